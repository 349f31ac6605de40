// Package views holds the storefront's HTML templates and static assets,
// embedded into the binary.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page. Each page is named after its file, e.g.
// "cart.html", and shares the "header" and "footer" partials.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// Static serves the files under static/
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}
