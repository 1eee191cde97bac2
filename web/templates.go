// Package web bundles the server-rendered page templates so the binary and
// the tests run from any working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.tmpl"))
}
