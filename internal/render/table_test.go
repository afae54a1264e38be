package render

import (
	"strings"
	"testing"
)

func TestBasicTable(t *testing.T) {
	table := &Table{
		Header: []string{"A", "B", "C"},
		Rows: [][]string{
			{"1", "2", "3"},
			{"10", "20", "30"},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)

	// top border + header + header border + 2 rows + bottom border + trailing newline = 7 lines
	lines := strings.Split(result, "\n")
	if len(lines) != 7 {
		t.Errorf("Expected 7 lines, got %d", len(lines))
	}
	if lines[1] != "| A  | B  | C  |" {
		t.Errorf("Unexpected header line: %q", lines[1])
	}
}

func TestMultilineCell(t *testing.T) {
	table := &Table{
		Header: []string{"Deck", "Reason"},
		Rows: [][]string{
			{"A", "첫째줄\n둘째줄\n셋째줄"},
			{"B", "단일줄"},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)

	// top border + header + header border + 3 display rows + 1 display row + bottom border + trailing newline = 9 lines
	lines := strings.Split(result, "\n")
	if len(lines) != 9 {
		t.Errorf("Expected 9 lines, got %d", len(lines))
	}
}

func TestRaggedRows(t *testing.T) {
	table := &Table{
		Rows: [][]string{
			{"only"},
			{"x", "y", "z"},
		},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestKoreanWidth(t *testing.T) {
	table := &Table{
		Header: []string{"제목", "Questions"},
		Rows:   [][]string{{"퀴즈 덱", "3"}},
	}

	result := table.Render()
	t.Logf("\n%s", result)

	checkAllLinesEqualWidth(t, result)
}

func TestEmptyTable(t *testing.T) {
	if got := (&Table{}).Render(); got != "" {
		t.Errorf("Expected empty render, got %q", got)
	}
}

func checkAllLinesEqualWidth(t *testing.T, result string) {
	t.Helper()
	lines := strings.Split(result, "\n")
	firstLineWidth := -1
	for i, line := range lines {
		if line == "" {
			continue
		}
		width := displayWidth(line)
		if firstLineWidth < 0 {
			firstLineWidth = width
		}
		if width != firstLineWidth {
			t.Errorf("Line %d has different display width: expected %d, got %d\nLine: %s", i, firstLineWidth, width, line)
		}
	}
}
