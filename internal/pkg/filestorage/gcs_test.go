package filestorage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/catalog/internal/pkg/apperrors"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) {
	return s.token, s.err
}

func TestGCSStoragePutSendsMediaUpload(t *testing.T) {
	var (
		gotPath, gotQueryName, gotUploadType string
		gotAuth, gotContentType              string
		gotBody                              []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQueryName = r.URL.Query().Get("name")
		gotUploadType = r.URL.Query().Get("uploadType")
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	store, err := NewGCSStorage(GCSConfig{Bucket: "gjufilesresources", UploadBaseURL: srv.URL}, staticTokens{token: "tok"}, srv.Client())
	require.NoError(t, err)

	key := "course_resources/CS116/123/notes.pdf"
	require.NoError(t, store.Put(context.Background(), key, []byte("%PDF-1.7"), "application/pdf"))

	assert.Equal(t, "/upload/storage/v1/b/gjufilesresources/o", gotPath)
	assert.Equal(t, key, gotQueryName)
	assert.Equal(t, "media", gotUploadType)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/pdf", gotContentType)
	assert.Equal(t, []byte("%PDF-1.7"), gotBody)
}

func TestGCSStoragePutRejectedIsUploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	store, err := NewGCSStorage(GCSConfig{Bucket: "b", UploadBaseURL: srv.URL}, staticTokens{token: "tok"}, srv.Client())
	require.NoError(t, err)

	err = store.Put(context.Background(), "k", []byte("x"), "text/plain")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUploadFailed))
	assert.Contains(t, err.Error(), "403")
}

func TestGCSStoragePutTokenFailure(t *testing.T) {
	store, err := NewGCSStorage(GCSConfig{Bucket: "b"}, staticTokens{err: apperrors.NewAuthError(errors.New("denied"))}, nil)
	require.NoError(t, err)

	err = store.Put(context.Background(), "k", []byte("x"), "text/plain")
	assert.True(t, errors.Is(err, apperrors.ErrAuthFailed))
}

func TestGCSStoragePublicURL(t *testing.T) {
	store, err := NewGCSStorage(GCSConfig{Bucket: "gjufilesresources"}, staticTokens{token: "tok"}, nil)
	require.NoError(t, err)

	assert.Equal(t,
		"https://storage.googleapis.com/gjufilesresources/course_resources/CS116/1/a.pdf",
		store.PublicURL("course_resources/CS116/1/a.pdf"))
}

func TestNewGCSStorageRequiresBucket(t *testing.T) {
	_, err := NewGCSStorage(GCSConfig{}, staticTokens{}, nil)
	assert.Error(t, err)
}
