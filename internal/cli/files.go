package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/e-lobo/herogram-go/internal/filex"
	"github.com/e-lobo/herogram-go/internal/models"
)

// List fetches the file listing and prints it. The snapshot replaces the
// cached one; there is no local cache invalidation beyond re-fetching.
func (a *App) List(ctx context.Context) error {
	files, err := a.files.List(ctx)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to fetch files: %s", err.Error()))
		return err
	}

	a.listed = make(map[string]models.File, len(files))
	for _, f := range files {
		a.listed[f.ID] = f
	}

	if len(files) == 0 {
		printlnFn("No files uploaded yet")
		return nil
	}

	printlnFn(fmt.Sprintf("%-26s %-30s %-10s %-13s %s", "ID", "NAME", "SIZE", "UPLOADED", "TYPE"))
	for _, f := range files {
		printlnFn(fmt.Sprintf("%-26s %-30s %-10s %-13s %s",
			f.ID, f.OriginalName, f.SizeMB(), f.CreatedDate(), f.MimeType))
	}
	return nil
}

// Upload sends every given path concurrently and waits for the whole
// batch. One failure fails the batch as a whole.
func (a *App) Upload(ctx context.Context, paths []string) error {
	if err := a.files.UploadAll(ctx, paths); err != nil {
		printlnFn(fmt.Sprintf("Upload failed: %s", err.Error()))
		return err
	}
	printlnFn("Files uploaded successfully")
	return a.List(ctx)
}

// Download saves a file into the given destination directory, or into
// the configured download directory when none is given. The file is
// named after its original name when the id is known from the last
// listing.
func (a *App) Download(ctx context.Context, args []string) error {
	id := args[0]

	target := a.config.DownloadDir
	if len(args) > 1 && args[1] != "" {
		target = args[1]
	}

	dir, err := filex.EnsureDir(target)
	if err != nil {
		return err
	}

	name := id
	if f, ok := a.listed[id]; ok {
		name = f.OriginalName
	}
	dest := filepath.Join(dir, filepath.Base(name))

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := a.files.Download(ctx, id, out); err != nil {
		printlnFn(fmt.Sprintf("Download failed: %s", err.Error()))
		_ = os.Remove(dest)
		return err
	}

	printlnFn(fmt.Sprintf("Saved to %s", dest))
	return nil
}
