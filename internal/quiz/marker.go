package quiz

import (
	"strings"

	"github.com/hanpama/pptquiz/internal/deck"
)

var reviewPhrases = []string{
	"lesson objectives review",
	"lesson objective review",
	"objectives review",
}

// IsReviewMarker reports whether a slide's text announces the review section.
func IsReviewMarker(text string) bool {
	normalized := normalize(text)
	for _, phrase := range reviewPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// FindReviewMarker returns the index of the first review-marker slide.
func FindReviewMarker(slides []deck.Slide) (int, bool) {
	for i, slide := range slides {
		if IsReviewMarker(slide.Text) {
			return i, true
		}
	}
	return -1, false
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
