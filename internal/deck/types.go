package deck

import (
	"io"
	"path/filepath"
	"strings"
)

// Slide is one page of a deck reduced to a single text blob.
// Text is the newline-joined text of every text-bearing shape, in shape order.
type Slide struct {
	Index int
	Text  string
}

// Deck is one presentation file and its slides.
type Deck struct {
	Name   string
	Path   string
	Slides []Slide
}

// SlideScanner yields slides in order and returns io.EOF after the last one.
type SlideScanner interface {
	Next() (Slide, error)
}

// Stem returns the file name of path without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Collect drains a scanner into a slice and closes it when it is an io.Closer.
func Collect(s SlideScanner) ([]Slide, error) {
	if c, ok := s.(io.Closer); ok {
		defer c.Close()
	}

	var slides []Slide
	for {
		slide, err := s.Next()
		if err == io.EOF {
			return slides, nil
		}
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
}
