package generator

import (
	"embed"
	"text/template"
)

//go:embed templates/companion.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/companion.tmpl"))

// executeTemplate executes a template by name and returns the rendered text
func executeTemplate(name string, data any) (string, error) {
	buf := getTemplateBuffer()
	defer putTemplateBuffer(buf)

	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
