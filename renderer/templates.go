package renderer

import "embed"

// templates holds the markdown templates for the report renderers.
// Assemblies (discounting.md) pull in partials (discounting_title.md)
// under the aliases declared by their Render function.
//
//go:embed *.md
var templates embed.FS
