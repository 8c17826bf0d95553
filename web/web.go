package web

import "embed"

// Templates holds the dashboard UI served by the handlers package.
//
//go:embed templates/*.html
var Templates embed.FS
