package templates

import (
	"embed"
	"html/template"
)

//go:embed html/*.html
var files embed.FS

// Load parses every page template together with the shared layout
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"flashClass": func(category string) string {
			if category == "error" {
				return "alert alert-error"
			}
			return "alert alert-success"
		},
	}).ParseFS(files, "html/*.html")
}
