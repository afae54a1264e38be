package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/hanpama/pptquiz/internal/deck"
)

const (
	contentTypesPart     = "[Content_Types].xml"
	presentationPart     = "ppt/presentation.xml"
	presentationRelsPart = "ppt/_rels/presentation.xml.rels"
	presentationMLType   = "presentationml"
	slideRelType         = "/slide"
)

// Reader provides access to the slides of a PPTX package.
type Reader struct {
	zipReader *zip.Reader
	slides    []string
}

// Open opens a PPTX file and resolves its slide parts in presentation order.
func Open(r io.ReaderAt, size int64) (*Reader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPTX as ZIP: %w", err)
	}

	reader := &Reader{
		zipReader: zipReader,
	}

	if err := reader.validateContentTypes(); err != nil {
		return nil, err
	}

	if err := reader.loadSlides(); err != nil {
		return nil, err
	}

	return reader, nil
}

// SlideParts returns the slide part names in presentation order.
func (r *Reader) SlideParts() []string {
	return r.slides
}

func (r *Reader) validateContentTypes() error {
	file, err := r.zipReader.Open(contentTypesPart)
	if err != nil {
		return fmt.Errorf("content types part not found: %w", err)
	}
	defer file.Close()

	var types struct {
		XMLName   xml.Name `xml:"Types"`
		Overrides []struct {
			PartName    string `xml:"PartName,attr"`
			ContentType string `xml:"ContentType,attr"`
		} `xml:"Override"`
	}
	if err := newDecoder(file).Decode(&types); err != nil {
		return fmt.Errorf("failed to parse content types: %w", err)
	}

	for _, o := range types.Overrides {
		if strings.TrimPrefix(o.PartName, "/") == presentationPart && strings.Contains(o.ContentType, presentationMLType) {
			return nil
		}
	}
	return fmt.Errorf("invalid package: no presentationml main part declared")
}

func (r *Reader) loadSlides() error {
	ids, err := r.slideRelIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		r.slides = r.slidePartsByName()
		return nil
	}

	targets, err := r.slideTargets()
	if err != nil {
		return err
	}

	r.slides = make([]string, 0, len(ids))
	for _, id := range ids {
		target, ok := targets[id]
		if !ok {
			return fmt.Errorf("slide relationship %s not found", id)
		}
		r.slides = append(r.slides, target)
	}
	return nil
}

func (r *Reader) slideRelIDs() ([]string, error) {
	file, err := r.zipReader.Open(presentationPart)
	if err != nil {
		return nil, fmt.Errorf("presentation part not found: %w", err)
	}
	defer file.Close()

	var pres struct {
		XMLName  xml.Name `xml:"presentation"`
		SlideIDs []struct {
			RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sldIdLst>sldId"`
	}
	if err := newDecoder(file).Decode(&pres); err != nil {
		return nil, fmt.Errorf("failed to parse presentation part: %w", err)
	}

	ids := make([]string, 0, len(pres.SlideIDs))
	for _, s := range pres.SlideIDs {
		ids = append(ids, s.RelID)
	}
	return ids, nil
}

func (r *Reader) slideTargets() (map[string]string, error) {
	file, err := r.zipReader.Open(presentationRelsPart)
	if err != nil {
		return nil, fmt.Errorf("presentation relationships not found: %w", err)
	}
	defer file.Close()

	var rels struct {
		XMLName       xml.Name `xml:"Relationships"`
		Relationships []struct {
			ID     string `xml:"Id,attr"`
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := newDecoder(file).Decode(&rels); err != nil {
		return nil, fmt.Errorf("failed to parse presentation relationships: %w", err)
	}

	targets := make(map[string]string)
	for _, rel := range rels.Relationships {
		if !strings.HasSuffix(rel.Type, slideRelType) {
			continue
		}
		targets[rel.ID] = resolveTarget(rel.Target)
	}
	return targets, nil
}

// slidePartsByName lists ppt/slides/slideN.xml ordered by N.
func (r *Reader) slidePartsByName() []string {
	type numbered struct {
		name string
		n    int
	}
	var parts []numbered
	for _, file := range r.zipReader.File {
		name := file.Name
		if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml"))
		if err != nil {
			continue
		}
		parts = append(parts, numbered{name: name, n: n})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].n < parts[j].n })

	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.name)
	}
	return names
}

// NewSlideScanner creates a deck.SlideScanner over the presentation's slides.
func (r *Reader) NewSlideScanner() deck.SlideScanner {
	return &SlideScanner{reader: r}
}

func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join("ppt", target))
}

func newDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}
