package reports

import _ "embed"

// reportTemplate is the HTML document shell every report renders into.
//
//go:embed report_template.html
var reportTemplate string
