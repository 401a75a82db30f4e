package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded presentation page.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static dir is compiled in; a failure here is a build defect.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
