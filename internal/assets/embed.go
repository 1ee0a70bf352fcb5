// Package assets serves the app manifest and widget templates embedded via
// go:embed. These are static configuration consumed by the chat client's
// rendering pipeline, not part of the tool-call path.
package assets

import (
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

//go:embed all:static
var staticFS embed.FS

// mimeFromExt returns the MIME type for a file extension, falling back to
// the standard library's database and then to application/octet-stream.
func mimeFromExt(ext string) string {
	switch ext {
	case ".json":
		return "application/json"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
		return "application/octet-stream"
	}
}

// fileServer serves the embedded static tree with explicit content types.
// Manifest and widget files are unhashed, so everything is no-cache.
func fileServer() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("assets: failed to create sub filesystem: " + err.Error())
	}
	fs := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ext := strings.ToLower(path.Ext(r.URL.Path)); ext != "" {
			w.Header().Set("Content-Type", mimeFromExt(ext))
		}
		w.Header().Set("Cache-Control", "no-cache")
		fs.ServeHTTP(w, r)
	})
}

// RegisterRoutes mounts the manifest and widget templates on the mux.
func RegisterRoutes(mux *http.ServeMux) {
	files := fileServer()

	mux.Handle("/widgets/", files)
	mux.HandleFunc("/.well-known/mcp/manifest.json", func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = "/manifest.json"
		files.ServeHTTP(w, r)
	})
}
