package models

import "time"

// ShareStatistics are the view counters the server keeps per share link.
type ShareStatistics struct {
	TotalViews   int        `json:"totalViews"`
	UniqueViews  int        `json:"uniqueViews"`
	LastViewedAt *time.Time `json:"lastViewedAt"`
	IsExpired    bool       `json:"isExpired"`
}

// Share is one expiring share link for a file. A file may accumulate
// several links over time; the client indexes them by file id in memory.
type Share struct {
	ID         string          `json:"id"`
	URL        string          `json:"url"`
	ExpiresAt  *time.Time      `json:"expiresAt"`
	Statistics ShareStatistics `json:"statistics"`
}
