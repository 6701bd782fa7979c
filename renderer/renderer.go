// Package renderer builds markdown reports from computation results.
// Report structs carry the numbers, templates and builders turn them
// into markdown, so the same report can be rendered, embedded, or
// serialized to json unchanged.
package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// RenderDiscounting renders the Discounting struct to a markdown string.
func RenderDiscounting(d *Discounting) string {
	partials := map[string]string{
		"discounting_title":  "discounting_title.md",
		"discounting_flows":  "discounting_flows.md",
		"discounting_result": "discounting_result.md",
	}
	return renderTemplate("discounting", "discounting.md", partials, d)
}

// RenderYield renders the Yield struct to a markdown string. The flow
// table partial is shared with the discounting report, aliased as
// "flows" here.
func RenderYield(y *Yield) string {
	partials := map[string]string{
		"yield_title":  "yield_title.md",
		"flows":        "discounting_flows.md",
		"yield_result": "yield_result.md",
	}
	return renderTemplate("yield", "yield.md", partials, y)
}

// RenderAllocation renders the Allocation struct to a markdown string.
func RenderAllocation(a *Allocation) string {
	partials := map[string]string{
		"allocation_title":  "allocation_title.md",
		"allocation_result": "allocation_result.md",
	}
	return renderTemplate("allocation", "allocation.md", partials, a)
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
