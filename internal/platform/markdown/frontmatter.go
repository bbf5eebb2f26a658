package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Document is a Markdown file split into its YAML frontmatter and body.
type Document struct {
	meta yaml.Node
	Body string
}

// Parse splits content into frontmatter and body. Content without a leading
// separator is all body.
func Parse(content string) (Document, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, separator) {
		return Document{Body: content}, nil
	}
	rest := strings.TrimPrefix(content, separator)
	idx := strings.Index(rest, "\n---\n")
	if idx < 0 {
		return Document{}, fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	doc := Document{Body: strings.TrimLeft(rest[idx+len("\n---\n"):], "\n")}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &doc.meta); err != nil {
		return Document{}, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return doc, nil
}

// Decode decodes the frontmatter into out.
func (d Document) Decode(out any) error {
	if d.meta.Kind == 0 {
		return nil
	}
	if err := d.meta.Decode(out); err != nil {
		return fmt.Errorf("decode frontmatter: %w", err)
	}
	return nil
}

// Sections splits the body on level-two headings. Text before the first
// heading is dropped.
func (d Document) Sections() map[string]string {
	sections := map[string]string{}
	current := ""
	var buf strings.Builder
	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(buf.String())
		}
		buf.Reset()
	}
	for _, line := range strings.Split(d.Body, "\n") {
		if heading, ok := strings.CutPrefix(line, "## "); ok {
			flush()
			current = strings.ToLower(strings.TrimSpace(heading))
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	flush()
	return sections
}

// ListItems returns the text of ordered ("1.") and unordered ("-") list items.
func ListItems(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if item, ok := strings.CutPrefix(line, "- "); ok {
			items = append(items, strings.TrimSpace(item))
			continue
		}
		if dot := strings.Index(line, ". "); dot > 0 && isDigits(line[:dot]) {
			items = append(items, strings.TrimSpace(line[dot+2:]))
		}
	}
	return items
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
