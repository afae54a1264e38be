package quiz

import (
	"github.com/hanpama/pptquiz/internal/deck"
)

// Assemble pairs question slides after the marker with the answer slide that follows them.
// A question without an answer slide, or one that fails validation, is dropped.
func Assemble(slides []deck.Slide, marker int) []Question {
	var questions []Question

	for i := marker + 1; i < len(slides); {
		if Classify(slides[i].Text) != KindQuestion {
			i++
			continue
		}

		frag := ParseQuestion(slides[i].Text)
		var correct string
		if i+1 < len(slides) && Classify(slides[i+1].Text) == KindAnswer {
			correct, _ = ParseAnswer(slides[i+1].Text)
			i += 2
		} else {
			i++
		}

		if q, err := NewQuestion(frag, correct); err == nil {
			questions = append(questions, q)
		}
	}
	return questions
}

// Extract locates the review marker and assembles the quiz that follows it.
func Extract(name string, slides []deck.Slide) (*Quiz, error) {
	marker, ok := FindReviewMarker(slides)
	if !ok {
		return nil, ErrNoReviewMarker
	}
	if marker+1 >= len(slides) {
		return nil, ErrNoSlidesAfterMarker
	}

	questions := Assemble(slides, marker)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Quiz{DeckName: name, ReviewIndex: marker, Questions: questions}, nil
}
