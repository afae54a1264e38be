package ppt

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf16Decoder  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	latin1Decoder = charmap.ISO8859_1

	// PowerPoint separates paragraphs with CR and soft line breaks with VT.
	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\v", "\n")
)

// isTextAtom reports whether rec carries shape or placeholder text.
func isTextAtom(rec Rec) bool {
	return rec.Type == recTypeTextCharsAtom || rec.Type == recTypeTextBytesAtom
}

// decodeTextAtom returns the text of a TextCharsAtom (UTF-16LE) or TextBytesAtom (Latin-1).
func decodeTextAtom(rec Rec) (string, error) {
	var (
		raw []byte
		err error
	)
	switch rec.Type {
	case recTypeTextCharsAtom:
		raw, err = utf16Decoder.NewDecoder().Bytes(rec.Data)
	case recTypeTextBytesAtom:
		raw, err = latin1Decoder.NewDecoder().Bytes(rec.Data)
	default:
		return "", fmt.Errorf("record 0x%04X is not a text atom", rec.Type)
	}
	if err != nil {
		return "", fmt.Errorf("decode text atom at %d: %w", rec.Offset, err)
	}
	return lineBreaks.Replace(string(raw)), nil
}
