// Package rst renders the reStructuredText fragments used by the
// configuration documentation output.
package rst

import (
	"fmt"
	"io"
	"strings"
)

// WriteHeader writes header surrounded by separator lines sized to the
// header text. A non-empty anchor emits a label line first.
func WriteHeader(w io.Writer, header, anchor string, separator rune) {
	if anchor != "" {
		fmt.Fprintf(w, ".. _%s\n\n", anchor)
	}
	line := strings.Repeat(string(separator), len(header))
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, line)
}

// WriteTable writes a simple RST table: a divider of = runs sized per
// column, the header row, a divider, the rows, and a closing divider.
// Column widths are the maximum cell width per column, header included.
func WriteTable(w io.Writer, headers []string, rows [][]string) {
	widths := columnWidths(headers, rows)

	segments := make([]string, len(widths))
	for i, width := range widths {
		segments[i] = strings.Repeat("=", width)
	}
	divider := strings.Join(segments, " ")

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, formatRow(headers, widths))
	fmt.Fprintln(w, divider)
	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
	fmt.Fprintln(w, divider)
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", width-len(cell))
	}
	return strings.Join(padded, " ")
}
