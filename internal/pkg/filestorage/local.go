package filestorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/logger"
)

// LocalStorage handles saving objects to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where objects will be stored
	baseURL  string // The base URL the stored objects are served from
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is prepended to object keys when building public URLs; it defaults to "/uploads".
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if baseURL == "" {
		baseURL = "/uploads"
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes data to basePath/key, creating intermediate directories
func (ls *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewUploadError("failed to store "+key, err)
	}

	dstPath, err := ls.resolve(key)
	if err != nil {
		return apperrors.NewUploadError("failed to store "+key, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create subdirectory")
		return apperrors.NewUploadError("failed to store "+key, err)
	}

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write object")
		// Attempt to remove the partially written file
		_ = os.Remove(dstPath)
		return apperrors.NewUploadError("failed to store "+key, err)
	}

	logger.Debug().Str("key", key).Str("content_type", contentType).Int("bytes", len(data)).Msg("Object saved locally")
	return nil
}

// PublicURL returns the URL the object is served from
func (ls *LocalStorage) PublicURL(key string) string {
	return ls.baseURL + "/" + strings.TrimLeft(key, "/")
}

// BasePath returns the directory objects are written to
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// resolve maps a key to a path inside basePath, refusing keys that escape it
func (ls *LocalStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(ls.basePath, cleaned), nil
}
