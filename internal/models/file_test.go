package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_SizeMB(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"one kilobyte", 1024, "0.00 MB"},
		{"one megabyte", 1024 * 1024, "1.00 MB"},
		{"one and a half", 1536 * 1024, "1.50 MB"},
		{"zero", 0, "0.00 MB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := File{Size: tc.size}
			assert.Equal(t, tc.want, f.SizeMB())
		})
	}
}

func TestFile_CreatedDate(t *testing.T) {
	f := File{CreatedAt: time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)}
	assert.Equal(t, "Mar 5, 2024", f.CreatedDate())
}

func TestFile_IsImage(t *testing.T) {
	assert.True(t, File{MimeType: "image/png"}.IsImage())
	assert.False(t, File{MimeType: "text/plain"}.IsImage())
	assert.False(t, File{}.IsImage())
}

func TestFile_UnmarshalWireShape(t *testing.T) {
	raw := `{
		"id": "f1",
		"originalName": "a.txt",
		"mimeType": "text/plain",
		"size": 1024,
		"path": "/uploads/a.txt",
		"folder": "root",
		"userId": "u1",
		"createdAt": "2024-03-05T10:30:00Z",
		"updatedAt": "2024-03-05T10:30:00Z",
		"uploadedBy": "A"
	}`

	var f File
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	assert.Equal(t, "f1", f.ID)
	assert.Equal(t, "a.txt", f.OriginalName)
	assert.Equal(t, int64(1024), f.Size)
	assert.Equal(t, "0.00 MB", f.SizeMB())
}

func TestShare_NullableFields(t *testing.T) {
	raw := `{
		"id": "s1",
		"url": "https://x/s/abc",
		"expiresAt": null,
		"statistics": {"totalViews": 3, "uniqueViews": 2, "lastViewedAt": null, "isExpired": false}
	}`

	var s Share
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Nil(t, s.ExpiresAt)
	assert.Nil(t, s.Statistics.LastViewedAt)
	assert.Equal(t, 3, s.Statistics.TotalViews)
}
