// Package web embeds the server-rendered HTML templates so the binary (and the
// handler tests) work regardless of the working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var archivos embed.FS

// Templates parses the embedded page templates. Panics on malformed templates
// at startup, never at request time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(archivos, "templates/*.html"))
}
