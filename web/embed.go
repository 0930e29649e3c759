// Package web carries the HTML templates and assets compiled into the binary.
package web

import "embed"

var (
	//go:embed templates/*.html
	Templates embed.FS

	//go:embed static
	Static embed.FS

	//go:embed images
	Images embed.FS
)
