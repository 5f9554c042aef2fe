package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/e-lobo/herogram-go/internal/api"
	"github.com/e-lobo/herogram-go/internal/models"
)

// shareExpirationHours is the fixed lifetime requested for every new
// share link.
const shareExpirationHours = 1

// FileService covers the authenticated file operations.
//
// Delete is part of the contract but is not exposed by the interactive
// surface. Every operation raises *api.Error on non-ok responses; none
// of them ever degrades a failure into empty data.
type FileService interface {
	List(ctx context.Context) ([]models.File, error)
	Upload(ctx context.Context, name string, r io.Reader) error
	UploadAll(ctx context.Context, paths []string) error
	Delete(ctx context.Context, id string) error
	CreateShareLink(ctx context.Context, fileID string) (string, error)
	ShareStats(ctx context.Context, fileID string) ([]models.Share, error)
	Download(ctx context.Context, id string, w io.Writer) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type fileService struct {
	client *api.Client
}

// NewFileService binds the service to the authenticated client variant.
func NewFileService(client *api.Client) FileService {
	return &fileService{client: client}
}

func (s *fileService) List(ctx context.Context) ([]models.File, error) {
	var out models.Envelope[[]models.File]
	if err := s.client.JSON(ctx, http.MethodGet, "/files/my-files", nil, &out); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return out.Data, nil
}

func (s *fileService) Upload(ctx context.Context, name string, r io.Reader) error {
	return s.client.Upload(ctx, "/files/upload", name, r)
}

// UploadAll issues one upload per path concurrently and waits for all of
// them to settle. Any single failure fails the whole batch; there is no
// partial-success reporting.
func (s *fileService) UploadAll(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()
			return s.Upload(ctx, filepath.Base(path), f)
		})
	}
	return g.Wait()
}

func (s *fileService) Delete(ctx context.Context, id string) error {
	if err := s.client.JSON(ctx, http.MethodDelete, "/files/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

type createShareRequest struct {
	FileID          string `json:"fileId"`
	ExpirationHours int    `json:"expirationHours"`
}

func (s *fileService) CreateShareLink(ctx context.Context, fileID string) (string, error) {
	var out models.Envelope[models.Share]
	req := createShareRequest{FileID: fileID, ExpirationHours: shareExpirationHours}
	if err := s.client.JSON(ctx, http.MethodPost, "/files/share/create", req, &out); err != nil {
		return "", fmt.Errorf("create share link: %w", err)
	}
	return out.Data.URL, nil
}

func (s *fileService) ShareStats(ctx context.Context, fileID string) ([]models.Share, error) {
	var out models.Envelope[[]models.Share]
	if err := s.client.JSON(ctx, http.MethodGet, "/files/share-stats/"+fileID, nil, &out); err != nil {
		return nil, fmt.Errorf("share stats: %w", err)
	}
	return out.Data, nil
}

func (s *fileService) Download(ctx context.Context, id string, w io.Writer) error {
	return s.client.Download(ctx, "/files/"+id, w)
}

func (s *fileService) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.Envelope[models.User]
	if err := s.client.JSON(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &out.Data, nil
}
