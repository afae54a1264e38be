package quiz

import (
	"regexp"
	"strings"
)

var (
	questionHeader = regexp.MustCompile(`(?i)^question\s*\d*`)
	optionMarker   = regexp.MustCompile(`(?i)[A-D]\)`)
)

type classifierRule struct {
	match func(text string) bool
	kind  Kind
}

// classifierRules are evaluated in order; the first match wins.
// Question precedes Answer so "Answer: A) ..." is a question slide.
var classifierRules = []classifierRule{
	{match: isQuestionText, kind: KindQuestion},
	{match: isAnswerText, kind: KindAnswer},
}

// Classify labels slide text as Question, Answer or Other.
func Classify(text string) Kind {
	for _, rule := range classifierRules {
		if rule.match(text) {
			return rule.kind
		}
	}
	return KindOther
}

func isQuestionText(text string) bool {
	return questionHeader.MatchString(strings.TrimSpace(text)) || optionMarker.MatchString(text)
}

func isAnswerText(text string) bool {
	normalized := normalize(text)
	return strings.HasPrefix(normalized, "answer") || strings.Contains(normalized, "correct answer")
}
