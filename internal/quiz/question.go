package quiz

import (
	"regexp"
	"strings"
)

var optionLine = regexp.MustCompile(`(?i)^([A-D])\)\s*(.+)$`)

// ParseQuestion splits a question slide into its question text and options.
//
// Lines before the first "Question N" header are ignored; without a header the whole
// slide is body. Header lines themselves are skipped. Non-option lines are joined into
// the question text until the first option line; after that they are dropped.
func ParseQuestion(text string) Fragment {
	lines := nonBlankLines(text)

	start := 0
	for i, line := range lines {
		if questionHeader.MatchString(line) {
			start = i
			break
		}
	}

	var (
		frag  Fragment
		parts []string
	)
	for _, line := range lines[start:] {
		if questionHeader.MatchString(line) {
			continue
		}
		if m := optionLine.FindStringSubmatch(line); m != nil {
			frag.Options.Add(strings.ToUpper(m[1]), strings.TrimSpace(m[2]))
			continue
		}
		if frag.Options.Len() == 0 {
			parts = append(parts, line)
		}
	}
	frag.Text = strings.TrimSpace(strings.Join(parts, " "))
	return frag
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
