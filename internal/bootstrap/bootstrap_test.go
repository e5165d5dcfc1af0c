package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appControllers "github.com/coursehub/catalog/internal/app/controllers"
	appRoutes "github.com/coursehub/catalog/internal/app/routes"
	"github.com/coursehub/catalog/internal/config"
	"github.com/coursehub/catalog/internal/pkg/filestorage"
	"github.com/coursehub/catalog/internal/pkg/helpers"
)

func TestCorsConfigWildcard(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = "*"

	corsCfg := corsConfig(cfg)
	assert.True(t, corsCfg.AllowAllOrigins)
	assert.Empty(t, corsCfg.AllowOrigins)
}

func TestCorsConfigOriginList(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = "https://catalog.example, https://admin.example"

	corsCfg := corsConfig(cfg)
	assert.False(t, corsCfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://catalog.example", "https://admin.example"}, corsCfg.AllowOrigins)
}

func TestBuildObjectStoreLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = "9093"
	cfg.Storage.Driver = "local"
	cfg.Storage.LocalPath = t.TempDir()

	store, uploadsDir, err := BuildObjectStore(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.IsType(t, &filestorage.LocalStorage{}, store)
	assert.Equal(t, cfg.Storage.LocalPath, uploadsDir)
	assert.Equal(t, "http://localhost:9093/uploads/course_resources/CS116/a.pdf", store.PublicURL("course_resources/CS116/a.pdf"))
}

func TestBuildObjectStoreGCS(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "gcs"
	cfg.Storage.Bucket = "gjufilesresources"
	cfg.Storage.PublicBaseURL = "https://storage.googleapis.com"
	cfg.Storage.UploadTimeout = "30s"
	cfg.Auth.Scope = "https://www.googleapis.com/auth/cloud-platform"

	store, uploadsDir, err := BuildObjectStore(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.IsType(t, &filestorage.GCSStorage{}, store)
	assert.Empty(t, uploadsDir)
	assert.Equal(t, "https://storage.googleapis.com/gjufilesresources/k/a.pdf", store.PublicURL("k/a.pdf"))
}

func TestNewMetricsRegistryServesRuntimeMetrics(t *testing.T) {
	reg := newMetricsRegistry()
	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}

func TestSetupRouterMountsMetricsAndPing(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.Server.AllowedOrigins = "*"
	cfg.Server.RequestTimeout = "5s"

	deps := &Dependencies{
		Metrics: newMetricsRegistry(),
		Controllers: appRoutes.Controllers{
			Course:   appControllers.NewCourseController(nil),
			Resource: appControllers.NewResourceController(nil),
			Link:     appControllers.NewLinkController(nil),
			Health:   appControllers.NewHealthController(nil),
		},
	}

	router := SetupRouter(cfg, deps, zerolog.Nop())
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://catalog.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUploadRouteOutlivesRequestTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.RequestTimeout = "60s"
	cfg.Storage.UploadTimeout = "2m"

	assert.Equal(t, time.Minute, RequestTimeout(cfg))
	assert.Equal(t, 3*time.Minute, UploadRequestTimeout(cfg))
	assert.Greater(t, UploadRequestTimeout(cfg), helpers.ParseDuration(cfg.Storage.UploadTimeout, 0))

	deps := &Dependencies{
		Controllers: appRoutes.Controllers{
			Course:   appControllers.NewCourseController(nil),
			Resource: appControllers.NewResourceController(nil),
			Link:     appControllers.NewLinkController(nil),
			Health:   appControllers.NewHealthController(nil),
		},
	}
	router := SetupRouter(cfg, deps, zerolog.Nop())

	var mounted bool
	for _, route := range router.Routes() {
		if route.Method == http.MethodPost && route.Path == appRoutes.UploadResourcePath {
			mounted = true
		}
	}
	assert.True(t, mounted, "upload route override must match a mounted route")
}
