package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/catalog/internal/app/controllers"
)

const (
	apiV1Prefix         = "/v1"
	uploadResourceRoute = "/course_resource/:course_id"

	// UploadResourcePath is the full pattern of the multi-file upload route
	UploadResourcePath = apiV1Prefix + uploadResourceRoute
)

// Controllers bundles the handlers mounted by SetupRouter
type Controllers struct {
	Course   *controllers.CourseController
	Resource *controllers.ResourceController
	Link     *controllers.LinkController
	Health   *controllers.HealthController
}

// Options holds the optional endpoints
type Options struct {
	// MetricsHandler is served at /metrics when set
	MetricsHandler http.Handler
	// UploadsDir is served at /uploads when objects are kept on local disk
	UploadsDir string
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, opts Options) {
	router.GET("/ping", c.Health.Ping)

	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}
	if opts.UploadsDir != "" {
		router.Static("/uploads", opts.UploadsDir)
	}

	// API version group
	v1 := router.Group(apiV1Prefix)
	{
		v1.GET("/health", c.Health.Health)
		v1.GET("/courses", c.Course.ListCourses)
		v1.GET("/course_details/:course_id", c.Course.GetCourseDetails)
		v1.POST(uploadResourceRoute, c.Resource.UploadResource)
		v1.POST("/course_link/:course_id", c.Link.CreateLink)
	}
}
