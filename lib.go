// Package pptquiz extracts review quizzes from presentation decks.
//
// A deck is reduced to one text blob per slide: the text of every text-bearing shape,
// newline-joined in drawing order. The quiz pipeline (see quizextract) finds the
// "Lesson objectives review" divider slide, pairs the question and answer slides that
// follow it, and emits a transactional SQL import script.
//
// # Example Usage
//
//	file, err := os.Open("IS_Claim_01.pptx")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	slides, err := pptquiz.Read(file)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range slides {
//		fmt.Printf("%d: %s\n", s.Index, s.Text)
//	}
//
// # Supported Formats
//
// PowerPoint 2007+ (.pptx): Office Open XML in a ZIP container
//   - Slide order from the presentation part relationships
//   - Grouped shapes and soft line breaks
//
// PowerPoint 97-2003 (.ppt): binary records in an OLE Compound File
//   - Persist directory and user edit chain resolution
//   - UTF-16LE and Latin-1 text atoms, outline placeholders
package pptquiz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hanpama/pptquiz/internal/deck"
	"github.com/hanpama/pptquiz/internal/ppt"
	"github.com/hanpama/pptquiz/internal/pptx"
)

// Slide is one slide's index and text.
type Slide = deck.Slide

// ReadPPTX reads the slides of an Office Open XML presentation.
// size must be the size of the file.
//
// Example:
//
//	file, _ := os.Open("deck.pptx")
//	defer file.Close()
//	info, _ := file.Stat()
//	slides, _ := pptquiz.ReadPPTX(file, info.Size())
func ReadPPTX(in io.ReaderAt, size int64) ([]Slide, error) {
	reader, err := pptx.Open(in, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PPTX file: %w", err)
	}

	slides, err := deck.Collect(reader.NewSlideScanner())
	if err != nil {
		return nil, fmt.Errorf("failed to read PPTX slides: %w", err)
	}
	return slides, nil
}

// ReadPPT reads the slides of a binary PowerPoint 97-2003 presentation.
func ReadPPT(in io.ReaderAt) ([]Slide, error) {
	scanner, err := ppt.Open(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PPT file: %w", err)
	}

	slides, err := deck.Collect(scanner)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPT slides: %w", err)
	}
	return slides, nil
}

// Read detects the format from the file extension:
//   - .pptx → ReadPPTX
//   - .ppt → ReadPPT
func Read(file *os.File) ([]Slide, error) {
	switch ext := strings.ToLower(filepath.Ext(file.Name())); ext {
	case ".pptx":
		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info: %w", err)
		}
		return ReadPPTX(file, info.Size())
	case ".ppt":
		return ReadPPT(file)
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
}

// ReadFile opens path and reads its slides.
func ReadFile(path string) ([]Slide, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// Provider reads slides from .pptx and .ppt files on disk.
type Provider struct{}

// Supports reports whether ext (with leading dot, any case) has a reader.
func (Provider) Supports(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pptx", ".ppt":
		return true
	}
	return false
}

// Slides reads the deck at path.
func (Provider) Slides(path string) ([]Slide, error) {
	return ReadFile(path)
}
