package pipeline

import (
	"github.com/hanpama/pptquiz/internal/deck"
	"github.com/hanpama/pptquiz/internal/quiz"
)

// Result is the outcome of processing one deck: Parsed, Skipped or ReadFailed.
type Result interface {
	DeckPath() string
	isResult()
}

// Parsed carries a deck that yielded at least one question.
type Parsed struct {
	Deck      deck.Deck
	TopicCode string
	Quiz      *quiz.Quiz
}

// Skipped is a readable deck without a usable quiz.
type Skipped struct {
	Deck   deck.Deck
	Reason error
}

// ReadFailed is a deck the slide provider could not read.
type ReadFailed struct {
	Path string
	Err  error
}

func (r Parsed) DeckPath() string     { return r.Deck.Path }
func (r Skipped) DeckPath() string    { return r.Deck.Path }
func (r ReadFailed) DeckPath() string { return r.Path }

func (Parsed) isResult()     {}
func (Skipped) isResult()    {}
func (ReadFailed) isResult() {}
