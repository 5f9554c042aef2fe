package models

import (
	"fmt"
	"time"
)

// File is a single stored file as reported by the API. The client holds a
// possibly-stale snapshot; after any mutation the full list is re-fetched
// rather than patched locally.
type File struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	Folder       string    `json:"folder"`
	UserID       string    `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UploadedBy   string    `json:"uploadedBy"`
}

// SizeMB renders the file size in megabytes with two decimals, the way the
// file listing displays it. A 1024-byte file renders as "0.00 MB".
func (f File) SizeMB() string {
	return fmt.Sprintf("%.2f MB", float64(f.Size)/1024/1024)
}

// CreatedDate renders the creation timestamp for display.
func (f File) CreatedDate() string {
	return f.CreatedAt.Format("Jan 2, 2006")
}

// IsImage reports whether the file's mime type is an image one.
func (f File) IsImage() bool {
	return len(f.MimeType) >= 6 && f.MimeType[:6] == "image/"
}
