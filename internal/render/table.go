package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a header row plus body rows rendered with ASCII borders.
// Cell text may span several lines.
type Table struct {
	Header []string
	Rows   [][]string
}

// AddRow appends a body row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// layout holds the measured grid before it is drawn.
type layout struct {
	cols       int
	rows       [][][]string // rows[row][col] = cell lines
	colWidths  []int
	rowHeights []int
	hasHeader  bool
}

// Render renders the table to an ASCII string.
func (t *Table) Render() string {
	return t.measure().render()
}

func (t *Table) measure() *layout {
	l := &layout{hasHeader: len(t.Header) > 0}

	all := t.Rows
	if l.hasHeader {
		all = append([][]string{t.Header}, t.Rows...)
	}
	for _, row := range all {
		if len(row) > l.cols {
			l.cols = len(row)
		}
	}

	l.colWidths = make([]int, l.cols)
	for i := range l.colWidths {
		l.colWidths[i] = 1
	}

	for _, row := range all {
		cells := make([][]string, l.cols)
		height := 1
		for c := 0; c < l.cols; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			lines := strings.Split(text, "\n")
			cells[c] = lines
			if len(lines) > height {
				height = len(lines)
			}
			for _, line := range lines {
				if w := displayWidth(line); w > l.colWidths[c] {
					l.colWidths[c] = w
				}
			}
		}
		l.rows = append(l.rows, cells)
		l.rowHeights = append(l.rowHeights, height)
	}
	return l
}

func (l *layout) render() string {
	if l.cols == 0 {
		return ""
	}

	var sb strings.Builder
	border := l.borderLine()

	sb.WriteString(border)
	sb.WriteString("\n")
	for r, cells := range l.rows {
		for line := 0; line < l.rowHeights[r]; line++ {
			sb.WriteString(l.contentLine(cells, line))
			sb.WriteString("\n")
		}
		// Body rows share one closing border; the header gets its own.
		if r == 0 && l.hasHeader && len(l.rows) > 1 {
			sb.WriteString(border)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(border)
	sb.WriteString("\n")
	return sb.String()
}

func (l *layout) borderLine() string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range l.colWidths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("+")
	}
	return sb.String()
}

func (l *layout) contentLine(cells [][]string, line int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for c, lines := range cells {
		text := ""
		if line < len(lines) {
			text = lines[line]
		}
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(text, l.colWidths[c]))
		sb.WriteString(" |")
	}
	return sb.String()
}

// displayWidth is the terminal column width of s, counting East Asian wide runes as two.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
