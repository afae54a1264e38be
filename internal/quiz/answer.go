package quiz

import (
	"regexp"
	"strings"
)

var (
	answerLabel  = regexp.MustCompile(`(?i)answer[:\s]*([A-D])\)?`)
	answerLetter = regexp.MustCompile(`(?i)^([A-D])\)?$`)
)

var optionLetters = []string{"A", "B", "C", "D"}

// ParseAnswer finds the correct option letter on an answer slide.
// Rules are tried in order: an "Answer: X" label, a line holding only the letter,
// then the first of A..D written as "X)" or "X )" anywhere in the text.
func ParseAnswer(text string) (string, bool) {
	text = strings.TrimSpace(text)

	if m := answerLabel.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1]), true
	}

	for _, line := range strings.Split(text, "\n") {
		if m := answerLetter.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}

	for _, letter := range optionLetters {
		if strings.Contains(text, letter+")") || strings.Contains(text, letter+" )") {
			return letter, true
		}
	}
	return "", false
}
