package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/auth"
	"github.com/coursehub/catalog/internal/pkg/logger"
)

const maxErrorBodyBytes = 4 << 10

// GCSConfig holds the settings of a Google Cloud Storage bucket
type GCSConfig struct {
	Bucket        string
	UploadBaseURL string
	PublicBaseURL string
	Timeout       time.Duration
}

// GCSStorage uploads objects through the Cloud Storage JSON API media endpoint.
type GCSStorage struct {
	cfg    GCSConfig
	tokens auth.TokenSource
	client *http.Client
}

// NewGCSStorage creates a new GCSStorage instance.
func NewGCSStorage(cfg GCSConfig, tokens auth.TokenSource, client *http.Client) (*GCSStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("gcs token source is required")
	}
	if cfg.UploadBaseURL == "" {
		cfg.UploadBaseURL = "https://storage.googleapis.com"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "https://storage.googleapis.com"
	}
	cfg.UploadBaseURL = strings.TrimRight(cfg.UploadBaseURL, "/")
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &GCSStorage{cfg: cfg, tokens: tokens, client: client}, nil
}

// Put uploads data under key using a bearer token from the token source
func (s *GCSStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL(key), bytes.NewReader(data))
	if err != nil {
		return apperrors.NewUploadError("failed to build upload request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.NewUploadError("failed to upload "+key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		logger.Error().
			Str("key", key).
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("Object store rejected upload")
		return apperrors.NewUploadError(
			"failed to upload "+key,
			fmt.Errorf("object store responded with status %d", resp.StatusCode),
		)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("Object uploaded")
	return nil
}

// PublicURL returns {publicBase}/{bucket}/{key}
func (s *GCSStorage) PublicURL(key string) string {
	return s.cfg.PublicBaseURL + "/" + s.cfg.Bucket + "/" + key
}

func (s *GCSStorage) uploadURL(key string) string {
	query := url.Values{}
	query.Set("uploadType", "media")
	query.Set("name", key)
	return fmt.Sprintf("%s/upload/storage/v1/b/%s/o?%s", s.cfg.UploadBaseURL, url.PathEscape(s.cfg.Bucket), query.Encode())
}
