// Package assets provides the static pages and stylesheet served by the
// server.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

// Names of the files every asset filesystem is expected to provide.
const (
	Index      = "index.html"
	AddPage    = "add.html"
	DeletePage = "delete.html"
	UpdatePage = "update.html"
	Stylesheet = "style.css"
)

//go:embed public
var embedded embed.FS

// New returns the asset filesystem. An empty dir selects the pages compiled
// into the binary; otherwise files are read from dir on every request.
func New(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "public")
}
