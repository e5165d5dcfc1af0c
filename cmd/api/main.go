package main

import (
	"os"

	"github.com/coursehub/catalog/internal/pkg/logger"
)

// @title CourseHub Catalog API
// @version 1.0
// @description Course catalog and course resource (notes, past exams, links) API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:9093
// @BasePath /v1
// @schemes http https

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// The logger package's init already set up a console logger
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
