package quiz

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	twoDigits     = regexp.MustCompile(`(\d{2})`)
	upToTwoDigits = regexp.MustCompile(`(\d{1,2})`)
)

type topicRule struct {
	keywords []string
	number   *regexp.Regexp
	prefix   string
}

var topicRules = []topicRule{
	{keywords: []string{"claim", "is_claim"}, number: twoDigits, prefix: "cc-01"},
	{keywords: []string{"policy", "pp_"}, number: twoDigits, prefix: "pc-02"},
	{keywords: []string{"billing", "bc_"}, number: twoDigits, prefix: "bc-01"},
	{keywords: []string{"chapter", "common"}, number: upToTwoDigits, prefix: "fw-01"},
}

const unknownStemRunes = 10

// TopicCode derives the curriculum topic code from a deck's file name stem.
func TopicCode(stem string) string {
	lower := strings.ToLower(stem)
	for _, rule := range topicRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		if num := rule.number.FindString(stem); num != "" {
			if len(num) < 2 {
				num = "0" + num
			}
			return fmt.Sprintf("%s-%s1", rule.prefix, num)
		}
	}

	runes := []rune(stem)
	if len(runes) > unknownStemRunes {
		runes = runes[:unknownStemRunes]
	}
	return "unknown-" + string(runes)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
