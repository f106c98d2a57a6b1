// Package renderer turns ledger reports into markdown and terminal tables.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderMonthly renders the monthly summary to a markdown string.
func RenderMonthly(m *Monthly) string {
	partials := map[string]string{
		"monthly_title": "monthly_title.md",
		"monthly_table": "monthly_table.md",
	}
	return renderTemplate("monthly", "monthly.md", partials, m)
}

// RenderRecords renders a list of records to a markdown string.
func RenderRecords(r *Records) string {
	partials := map[string]string{
		"records_title": "records_title.md",
		"records_table": "records_table.md",
	}
	return renderTemplate("records", "records.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
