package ui

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var static embed.FS

// Feature serves the counting page. Load it after the API features so
// their routes match first.
type Feature struct{}

// NewFeature creates the UI feature.
func NewFeature() *Feature {
	return &Feature{}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "ui"
}

// IsEnabled always returns true.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load mounts the embedded page at /.
func (f *Feature) Load(app fiber.Router) error {
	app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(static),
		PathPrefix: "static",
		Index:      "index.html",
	}))
	return nil
}
