// Package docs carries the built-in documentation topics served by
// the fincalc topic command.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic returns the content of one documentation topic. The pseudo
// topic "*" expands to every topic in alphabetical order.
func Topic(name string) (string, error) {
	if name == "*" {
		return Topics(All()...)
	}
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the content of several topics, in order.
func Topics(names ...string) (string, error) {
	var b bytes.Buffer
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// All lists the available topics in alphabetical order. The readme
// is the index of the topics, not a topic itself.
func All() []string {
	entries, _ := fs.Glob(docs, "*.md")

	var topics []string
	for _, entry := range entries {
		base := strings.TrimSuffix(entry, ".md")
		if base == "readme" {
			continue
		}
		topics = append(topics, base)
	}
	sort.Strings(topics)
	return topics
}
