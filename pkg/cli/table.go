package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"text/tabwriter"
)

// Table wraps text/tabwriter with consistent column-aligned output.
// Headers and a dash divider are written lazily on first Row() or Flush(),
// so empty tables produce no output.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	prefix  string
	written bool
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// WithPrefix sets a string prepended to each line (headers, divider, rows).
// Useful for indenting sub-tables within larger output.
func (t *Table) WithPrefix(prefix string) *Table {
	t.prefix = prefix
	return t
}

// Row writes a tab-separated row. On the first call, headers and divider
// are emitted before the row.
func (t *Table) Row(values ...string) {
	t.ensureHeaders()
	fmt.Fprintln(t.w, t.prefix+strings.Join(values, "\t"))
}

// Flush writes any buffered output. If no rows were written, nothing is printed.
func (t *Table) Flush() {
	if !t.written {
		return
	}
	t.w.Flush()
}

func (t *Table) ensureHeaders() {
	if t.written {
		return
	}
	t.written = true
	fmt.Fprintln(t.w, t.prefix+strings.Join(t.headers, "\t"))
	dividers := make([]string, len(t.headers))
	for i, h := range t.headers {
		dividers[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(t.w, t.prefix+strings.Join(dividers, "\t"))
}

// WrapTable is a width-constrained table: columns are capped to the terminal
// width and overflowing cells word-wrap onto continuation lines. Used for
// command lists and neighbor tables whose cells run long.
type WrapTable struct {
	headers []string
	rows    [][]string
	width   int
	prefix  string
}

// NewWrapTable creates a wrap table that renders within width columns.
func NewWrapTable(width int, headers ...string) *WrapTable {
	return &WrapTable{headers: headers, width: width}
}

// WithPrefix sets a string prepended to each rendered line.
func (t *WrapTable) WithPrefix(prefix string) *WrapTable {
	t.prefix = prefix
	return t
}

// Row appends one row. Missing trailing cells render empty.
func (t *WrapTable) Row(values ...string) {
	t.rows = append(t.rows, values)
}

// Render writes the table. An empty table produces no output.
func (t *WrapTable) Render(w io.Writer) {
	if len(t.rows) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visualLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && visualLen(cell) > widths[i] {
				widths[i] = visualLen(cell)
			}
		}
	}
	widths = capWidths(widths, t.headers, t.width, visualLen(t.prefix))

	t.writeLine(w, t.headers, widths)
	dividers := make([]string, len(t.headers))
	for i := range t.headers {
		dividers[i] = strings.Repeat("-", widths[i])
	}
	t.writeLine(w, dividers, widths)

	for _, row := range t.rows {
		t.writeRow(w, row, widths)
	}
}

// writeRow wraps each cell to its column width and emits as many physical
// lines as the tallest cell needs.
func (t *WrapTable) writeRow(w io.Writer, row []string, widths []int) {
	wrapped := make([][]string, len(widths))
	height := 1
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		wrapped[i] = wrapCell(cell, widths[i])
		if len(wrapped[i]) > height {
			height = len(wrapped[i])
		}
	}
	for line := 0; line < height; line++ {
		cells := make([]string, len(widths))
		for i := range widths {
			if line < len(wrapped[i]) {
				cells[i] = wrapped[i][line]
			}
		}
		t.writeLine(w, cells, widths)
	}
}

func (t *WrapTable) writeLine(w io.Writer, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = cell + strings.Repeat(" ", widths[i]-visualLen(cell))
	}
	fmt.Fprintln(w, t.prefix+strings.TrimRight(strings.Join(parts, "  "), " "))
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visualLen is the printed width of s, ignoring ANSI color sequences.
func visualLen(s string) int {
	return len(ansiRE.ReplaceAllString(s, ""))
}

// capWidths shrinks columns until the table fits in termWidth, never going
// below each header's own width. The widest column gives up space first.
func capWidths(widths []int, headers []string, termWidth, prefix int) []int {
	out := append([]int(nil), widths...)

	min := make([]int, len(headers))
	for i, h := range headers {
		min[i] = visualLen(h)
	}

	total := func() int {
		t := prefix + 2*(len(out)-1)
		for _, w := range out {
			t += w
		}
		return t
	}

	for total() > termWidth {
		widest := -1
		for i, w := range out {
			if w > min[i] && (widest == -1 || w > out[widest]) {
				widest = i
			}
		}
		if widest == -1 {
			break
		}
		reduce := out[widest] - min[widest]
		if excess := total() - termWidth; reduce > excess {
			reduce = excess
		}
		out[widest] -= reduce
	}
	return out
}

// wrapCell word-wraps s to width. A string that already fits is returned
// unchanged, ANSI sequences and all; words longer than width hard-break.
func wrapCell(s string, width int) []string {
	if visualLen(s) <= width {
		return []string{s}
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for visualLen(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case cur == "":
			cur = word
		case visualLen(cur)+1+visualLen(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
