package cli

import (
	"context"
	"fmt"
)

// Share creates a one-hour share link for the given file id, prints the
// URL, and refreshes the cached statistics for that file.
func (a *App) Share(ctx context.Context, args []string) error {
	id := args[0]

	url, err := a.files.CreateShareLink(ctx, id)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to create share link: %s", err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("Share link: %s", url))
	return a.Stats(ctx, args)
}

// Stats fetches and prints the share statistics for the given file id.
// Results are kept in memory keyed by file id, matching how a file
// accumulates links over time.
func (a *App) Stats(ctx context.Context, args []string) error {
	id := args[0]

	shares, err := a.files.ShareStats(ctx, id)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to fetch share stats: %s", err.Error()))
		return err
	}
	a.shareStats[id] = shares

	if len(shares) == 0 {
		printlnFn("No share links for this file yet")
		return nil
	}

	printlnFn(fmt.Sprintf("%-40s %-6s %-7s %-21s %s", "URL", "VIEWS", "UNIQUE", "LAST VIEWED", "EXPIRED"))
	for _, s := range shares {
		lastViewed := "never"
		if s.Statistics.LastViewedAt != nil {
			lastViewed = s.Statistics.LastViewedAt.Format("2006-01-02 15:04")
		}
		printlnFn(fmt.Sprintf("%-40s %-6d %-7d %-21s %v",
			s.URL, s.Statistics.TotalViews, s.Statistics.UniqueViews, lastViewed, s.Statistics.IsExpired))
	}
	return nil
}
