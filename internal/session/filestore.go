package session

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the token in a mode-0600 file so CLI sessions survive
// process restarts, the way the browser kept it in a cookie jar.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultTokenPath returns the token file location under the user's
// config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "herogram", "token"), nil
}

func (s *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) RemoveToken() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}
