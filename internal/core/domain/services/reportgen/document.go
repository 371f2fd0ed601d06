package reportgen

import (
	"html"
	"strings"
)

// Document is a rendered report before serialization: a titled list of
// sections. Keeping the structure explicit lets tests assert on content
// without parsing markup.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one titled block of a document: free-form lines, an optional
// table, or both.
type Section struct {
	Title string
	Lines []Line
	Table *Table
}

// Line is one labeled value in a section. Label may be empty for plain text.
type Line struct {
	Label string
	Value string
}

// Table is a column-headed table inside a section.
type Table struct {
	Headers []string
	Rows    [][]string
}

// HTML serializes the document into the simple markup the archive stores.
// All values are escaped; the structure mirrors what the print stylesheet
// expects: section divs with a title div, paragraphs, and plain tables.
func (d *Document) HTML() string {
	var b strings.Builder

	for _, s := range d.Sections {
		b.WriteString(`<div class="section">` + "\n")
		b.WriteString(`<div class="section-title">` + html.EscapeString(s.Title) + "</div>\n")

		for _, line := range s.Lines {
			if line.Label == "" {
				b.WriteString("<p>" + html.EscapeString(line.Value) + "</p>\n")
				continue
			}
			b.WriteString("<p><strong>" + html.EscapeString(line.Label) + ":</strong> " +
				html.EscapeString(line.Value) + "</p>\n")
		}

		if s.Table != nil {
			writeTable(&b, s.Table)
		}

		b.WriteString("</div>\n")
	}

	return b.String()
}

func writeTable(b *strings.Builder, t *Table) {
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range t.Headers {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
}

// SectionByTitle returns the first section with the given title, or nil.
func (d *Document) SectionByTitle(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}

// LineValue returns the value of the first line with the given label, or "".
func (s *Section) LineValue(label string) string {
	if s == nil {
		return ""
	}
	for _, l := range s.Lines {
		if l.Label == label {
			return l.Value
		}
	}
	return ""
}
