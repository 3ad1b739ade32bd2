package render

import "strings"

// Table writes one titled Markdown pipe table: title, blank line, header
// row, separator, then data rows in the exact order given. The caller owns
// column arity; header and rows are expected to be rectangular.
//
// Literal "|" inside a cell is escaped as "\|" so free text cannot break
// the column structure.
func Table(title string, header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	writeRow(&b, header)
	b.WriteString("\n|")
	for range header {
		b.WriteString("---|")
	}
	for _, row := range rows {
		b.WriteString("\n")
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	for i, c := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(escapeCell(c))
	}
	b.WriteString(" |")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
