package pptx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/hanpama/pptquiz/internal/deck"
)

const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

// SlideScanner reads slide parts one at a time and emits their text.
type SlideScanner struct {
	reader *Reader
	next   int
}

// Next returns the next slide of the presentation.
func (s *SlideScanner) Next() (deck.Slide, error) {
	if s.next >= len(s.reader.slides) {
		return deck.Slide{}, io.EOF
	}

	index := s.next
	name := s.reader.slides[index]
	s.next++

	file, err := s.reader.zipReader.Open(name)
	if err != nil {
		return deck.Slide{}, fmt.Errorf("failed to open slide %s: %w", name, err)
	}
	defer file.Close()

	shapes, err := extractShapeTexts(file)
	if err != nil {
		return deck.Slide{}, fmt.Errorf("failed to read slide %s: %w", name, err)
	}

	return deck.Slide{
		Index: index,
		Text:  strings.Join(shapes, "\n"),
	}, nil
}

// shapeBuilder collects the paragraphs of one p:sp while it is open.
type shapeBuilder struct {
	hasTextBody bool
	inTextBody  bool
	paragraphs  []string
	current     *strings.Builder
	inText      bool
}

// extractShapeTexts walks a slide part and returns the text of each text-bearing
// shape in document order. Shapes nested in groups are included.
func extractShapeTexts(r io.Reader) ([]string, error) {
	decoder := newDecoder(r)

	var (
		shapes []string
		shape  *shapeBuilder
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return shapes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("XML parse error: %w", err)
		}

		switch elem := token.(type) {
		case xml.StartElement:
			switch {
			case isElement(elem.Name, nsPresentationML, "sp"):
				shape = &shapeBuilder{}
			case shape == nil:
			case isElement(elem.Name, nsPresentationML, "txBody"):
				shape.hasTextBody = true
				shape.inTextBody = true
			case !shape.inTextBody:
			case isElement(elem.Name, nsDrawingML, "p"):
				shape.current = &strings.Builder{}
			case isElement(elem.Name, nsDrawingML, "t"):
				shape.inText = true
			case isElement(elem.Name, nsDrawingML, "br"):
				if shape.current != nil {
					shape.current.WriteString("\n")
				}
			}

		case xml.CharData:
			if shape != nil && shape.inText && shape.current != nil {
				shape.current.Write(elem)
			}

		case xml.EndElement:
			if shape == nil {
				continue
			}
			switch {
			case isElement(elem.Name, nsDrawingML, "t"):
				shape.inText = false
			case isElement(elem.Name, nsDrawingML, "p"):
				if shape.current != nil {
					shape.paragraphs = append(shape.paragraphs, shape.current.String())
					shape.current = nil
				}
			case isElement(elem.Name, nsPresentationML, "txBody"):
				shape.inTextBody = false
			case isElement(elem.Name, nsPresentationML, "sp"):
				if shape.hasTextBody {
					shapes = append(shapes, strings.Join(shape.paragraphs, "\n"))
				}
				shape = nil
			}
		}
	}
}

func isElement(name xml.Name, space, local string) bool {
	return name.Local == local && (name.Space == space || name.Space == "")
}
