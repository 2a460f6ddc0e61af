package timeseries

import (
	"testing"
)

func TestAlignEmpty(t *testing.T) {
	rows := Align(nil)
	if len(rows) != 0 {
		t.Errorf("Align(nil) should produce no rows, got %d", len(rows))
	}
	rows = Align([]Dataset{})
	if len(rows) != 0 {
		t.Errorf("Align([]) should produce no rows, got %d", len(rows))
	}
}

func TestAlignUnionOfDates(t *testing.T) {
	gdp := Dataset{
		ID:    "gdp",
		Label: "GDP",
		Data: []DataPoint{
			{Date: mustKey(t, "2022-01-01"), Value: Number(100)},
			{Date: mustKey(t, "2022-04-01"), Value: Number(101)},
		},
		Metadata: &Metadata{Units: "Billions of Dollars", Frequency: "Quarterly"},
	}
	unrate := Dataset{
		ID:    "unrate",
		Label: "Unemployment Rate",
		Data: []DataPoint{
			{Date: mustKey(t, "2022-04-01"), Value: Number(3.6)},
			{Date: mustKey(t, "2022-07-01"), Value: Number(3.5)},
		},
		Metadata: &Metadata{Units: "Percent", Frequency: "Monthly"},
	}

	rows := Align([]Dataset{gdp, unrate})

	// Union of distinct dates, not intersection: a date present in only
	// one dataset still yields a row.
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows (union of dates), got %d", len(rows))
	}

	// First row: only gdp has a value.
	if rows[0].Date.String() != "2022-01-01" {
		t.Errorf("Expected first row at 2022-01-01, got %s", rows[0].Date)
	}
	if rows[0].Values["gdp"] == nil || *rows[0].Values["gdp"] != 100 {
		t.Errorf("Expected gdp=100 at 2022-01-01, got %v", rows[0].Values["gdp"])
	}
	if rows[0].Values["unrate"] != nil {
		t.Errorf("Expected unrate absent at 2022-01-01, got %v", *rows[0].Values["unrate"])
	}

	// Shared date collapses into one row with both values.
	if rows[1].Date.String() != "2022-04-01" {
		t.Errorf("Expected second row at 2022-04-01, got %s", rows[1].Date)
	}
	if rows[1].Values["gdp"] == nil || *rows[1].Values["gdp"] != 101 {
		t.Errorf("Expected gdp=101 at shared date")
	}
	if rows[1].Values["unrate"] == nil || *rows[1].Values["unrate"] != 3.6 {
		t.Errorf("Expected unrate=3.6 at shared date")
	}
}

func TestAlignRowsStrictlyAscending(t *testing.T) {
	a := Dataset{ID: "a", Data: []DataPoint{
		{Date: mustKey(t, "2021-03-01"), Value: Number(3)},
		{Date: mustKey(t, "2021-01-01"), Value: Number(1)},
	}}
	b := Dataset{ID: "b", Data: []DataPoint{
		{Date: mustKey(t, "2021-02-01"), Value: Number(2)},
		{Date: mustKey(t, "2021-01-01"), Value: Number(10)},
	}}

	rows := Align([]Dataset{a, b})

	if len(rows) != 3 {
		t.Fatalf("Expected 3 distinct dates, got %d rows", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if !rows[i-1].Date.Before(rows[i].Date) {
			t.Errorf("Rows not strictly ascending at index %d: %s then %s",
				i, rows[i-1].Date, rows[i].Date)
		}
	}
}

func TestAlignRowCountMatchesDistinctDates(t *testing.T) {
	a := Dataset{ID: "a", Data: []DataPoint{
		{Date: mustKey(t, "2020"), Value: Number(1)},
		{Date: mustKey(t, "2021"), Value: Number(2)},
	}}
	// Year-only and full ISO forms of the same period share a date key.
	b := Dataset{ID: "b", Data: []DataPoint{
		{Date: mustKey(t, "2020-01-01"), Value: Number(9)},
		{Date: mustKey(t, "2022-01-01"), Value: Number(8)},
	}}

	rows := Align([]Dataset{a, b})
	if len(rows) != 3 {
		t.Fatalf("Expected 3 distinct date keys (2020, 2021, 2022), got %d", len(rows))
	}
	if rows[0].Values["a"] == nil || rows[0].Values["b"] == nil {
		t.Errorf("2020 appears in both datasets and should carry both values")
	}
}

func TestAlignMetadataByReference(t *testing.T) {
	meta := &Metadata{Units: "Percent"}
	ds := Dataset{ID: "x", Data: []DataPoint{
		{Date: mustKey(t, "2024-01-01"), Value: Number(1)},
	}, Metadata: meta}

	rows := Align([]Dataset{ds})
	if rows[0].Metadata["x"] != meta {
		t.Errorf("Row metadata should reference the dataset's metadata object")
	}

	// Mutations on the shared object are visible through the row.
	meta.Units = "Index"
	if rows[0].Metadata["x"].Units != "Index" {
		t.Errorf("Expected live metadata reference, got a copy")
	}
}

func TestAlignAbsentValuesStayAbsent(t *testing.T) {
	ds := Dataset{ID: "s", Data: []DataPoint{
		{Date: mustKey(t, "2024-01-01"), Value: nil},
		{Date: mustKey(t, "2024-02-01"), Value: Number(2)},
	}}

	rows := Align([]Dataset{ds})
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Values["s"] != nil {
		t.Errorf("An absent observation must stay absent in the aligned row")
	}
}
