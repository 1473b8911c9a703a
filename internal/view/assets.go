package view

import (
	"embed"
	"io/fs"
)

// StaticPrefix is where Static is mounted, both over HTTP and in exported sites.
const StaticPrefix = "/static"

//go:embed static
var staticFiles embed.FS

// Static exposes the embedded stylesheet and scripts rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// the directory is embedded at build time; a failure here is a programming error
		panic(err)
	}
	return sub
}
