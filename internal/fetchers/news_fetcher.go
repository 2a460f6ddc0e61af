package fetchers

import (
	"context"
	"fmt"

	"econograph/internal/models"
)

// FetchReleases fetches the FRED economic release calendar feed and
// returns up to limit upcoming entries.
func (f *DataFetcher) FetchReleases(ctx context.Context, limit int) ([]models.ReleaseItem, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.cfg.FREDReleasesRSSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release calendar: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("release calendar feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse release calendar feed: %w", err)
	}

	var items []models.ReleaseItem
	for _, item := range feed.Items {
		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format("Jan 2, 2006")
		}
		items = append(items, models.ReleaseItem{
			Title:     item.Title,
			Link:      item.Link,
			Published: published,
		})
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}
