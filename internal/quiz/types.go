package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf16"
)

var (
	// ErrNoReviewMarker is returned when no slide carries the review marker.
	ErrNoReviewMarker = errors.New("no 'Lesson objectives review' slide found")
	// ErrNoSlidesAfterMarker is returned when the marker is on the last slide.
	ErrNoSlidesAfterMarker = errors.New("no slides after review")
	// ErrNoQuestions is returned when assembly yields no complete question.
	ErrNoQuestions = errors.New("no questions extracted")
	// ErrIncompleteQuestion is returned by NewQuestion when a field is missing.
	ErrIncompleteQuestion = errors.New("incomplete question")
)

// Kind is the label the classifier assigns to a slide.
type Kind int

const (
	KindOther Kind = iota
	KindQuestion
	KindAnswer
)

func (k Kind) String() string {
	switch k {
	case KindQuestion:
		return "question"
	case KindAnswer:
		return "answer"
	default:
		return "other"
	}
}

// Options maps option letters to option text, remembering insertion order.
type Options struct {
	letters []string
	text    map[string]string
}

// Add records an option. The first occurrence of a letter wins; it reports whether text was stored.
func (o *Options) Add(letter, text string) bool {
	if _, ok := o.text[letter]; ok {
		return false
	}
	if o.text == nil {
		o.text = make(map[string]string)
	}
	o.letters = append(o.letters, letter)
	o.text[letter] = text
	return true
}

// Len returns the number of options.
func (o Options) Len() int { return len(o.letters) }

// Letters returns the option letters in appearance order.
func (o Options) Letters() []string {
	return append([]string(nil), o.letters...)
}

// Get returns the text of an option.
func (o Options) Get(letter string) (string, bool) {
	text, ok := o.text[letter]
	return text, ok
}

// MarshalJSON encodes the options as an object in appearance order, e.g. {"A": "foo", "B": "bar"}.
// Non-ASCII characters are written as \uXXXX escapes.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, letter := range o.letters {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := writeJSONString(&buf, letter); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		if err := writeJSONString(&buf, o.text[letter]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return escapeNonASCII(buf.Bytes()), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	for _, r := range string(data) {
		switch {
		case r < 0x80:
			out.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, "\\u%04x\\u%04x", hi, lo)
		default:
			fmt.Fprintf(&out, "\\u%04x", r)
		}
	}
	return out.Bytes()
}

// Fragment is a parsed question slide before validation.
type Fragment struct {
	Text    string
	Options Options
}

// Question is a validated question record.
type Question struct {
	Text    string
	Options Options
	Correct string
}

// NewQuestion materializes a question when the text, options and correct letter are all present
// and the letter names one of the options.
func NewQuestion(f Fragment, correct string) (Question, error) {
	if f.Text == "" || f.Options.Len() == 0 || correct == "" {
		return Question{}, ErrIncompleteQuestion
	}
	if _, ok := f.Options.Get(correct); !ok {
		return Question{}, ErrIncompleteQuestion
	}
	return Question{Text: f.Text, Options: f.Options, Correct: correct}, nil
}

// Quiz is the set of questions extracted from one deck.
type Quiz struct {
	DeckName    string
	ReviewIndex int
	Questions   []Question
}
