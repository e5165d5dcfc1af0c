package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout bounds the context handed to services. Store and object store
// calls made with it are cancelled once the deadline passes.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return RouteTimeouts(timeout, nil)
}

// RouteTimeouts is RequestTimeout with overrides keyed by the matched route
// pattern, e.g. "/v1/course_resource/:course_id". A non-positive timeout
// leaves the request context untouched.
func RouteTimeouts(defaultTimeout time.Duration, perRoute map[string]time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		timeout := defaultTimeout
		if override, ok := perRoute[c.FullPath()]; ok {
			timeout = override
		}
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
