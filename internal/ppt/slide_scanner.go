package ppt

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/hanpama/pptquiz/internal/deck"
)

// SlideScanner implements deck.SlideScanner over the slides of a .ppt document.
// Slides are resolved lazily, one SlideContainer per call to Next.
type SlideScanner struct {
	reader  *Reader
	entries []slideEntry
	next    int
}

// Open opens a .ppt compound file and returns a deck.SlideScanner.
func Open(file io.ReaderAt) (deck.SlideScanner, error) {
	reader, err := OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT reader: %w", err)
	}
	return reader.NewSlideScanner()
}

// NewSlideScanner lists the presentation's slides and returns a scanner over them.
func (r *Reader) NewSlideScanner() (*SlideScanner, error) {
	entries, err := r.slideEntries()
	if err != nil {
		return nil, err
	}
	return &SlideScanner{reader: r, entries: entries}, nil
}

// Next returns the next slide, or io.EOF after the last one.
func (s *SlideScanner) Next() (deck.Slide, error) {
	if s.next >= len(s.entries) {
		return deck.Slide{}, io.EOF
	}

	index := s.next
	entry := s.entries[index]
	s.next++

	rec, err := s.reader.recordByPersistID(entry.persistID, recTypeSlide)
	if err != nil {
		return deck.Slide{}, fmt.Errorf("failed to locate slide %d: %w", index+1, err)
	}

	texts, err := slideTexts(rec, entry.placeholders)
	if err != nil {
		return deck.Slide{}, fmt.Errorf("failed to read slide %d: %w", index+1, err)
	}

	return deck.Slide{
		Index: index,
		Text:  strings.Join(texts, "\n"),
	}, nil
}

// slideTexts collects the text of every shape in a SlideContainer in drawing order.
// Text atoms inside the drawing contribute directly; OutlineTextRefAtom pulls the
// indexed placeholder text from the slide list. Placeholder texts that no shape
// references are placed first.
func slideTexts(slide Rec, placeholders []string) ([]string, error) {
	var (
		shapes     []string
		referenced = make(map[int]bool)
	)

	err := walk(slide, func(rec Rec) error {
		switch {
		case isTextAtom(rec):
			text, err := decodeTextAtom(rec)
			if err != nil {
				return err
			}
			shapes = append(shapes, text)
		case rec.Type == recTypeOutlineTextRefAtom:
			if len(rec.Data) < 4 {
				return fmt.Errorf("outline text reference at %d too short", rec.Offset)
			}
			idx := int(int32(binary.LittleEndian.Uint32(rec.Data)))
			if idx >= 0 && idx < len(placeholders) {
				shapes = append(shapes, placeholders[idx])
				referenced[idx] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var unreferenced []string
	for i, text := range placeholders {
		if !referenced[i] {
			unreferenced = append(unreferenced, text)
		}
	}
	return append(unreferenced, shapes...), nil
}
