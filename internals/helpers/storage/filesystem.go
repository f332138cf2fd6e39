package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// FileStore writes images below a local directory that the HTTP layer serves
// at PublicPrefix.
type FileStore struct {
	basePath     string
	publicPrefix string
}

const DefaultPublicPrefix = "/uploads"

func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, pkgerrors.Wrap(err, "storage: ensure base path")
	}
	return &FileStore{basePath: basePath, publicPrefix: DefaultPublicPrefix}, nil
}

func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Save writes data at the cleaned key and returns "/uploads/<key>".
func (s *FileStore) Save(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", pkgerrors.Wrap(err, "storage: ensure directory")
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", pkgerrors.Wrap(err, "storage: write file")
	}
	return s.publicPrefix + "/" + cleanKey, nil
}
