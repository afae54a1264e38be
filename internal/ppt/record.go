package ppt

import (
	"encoding/binary"
	"fmt"
	"io"
)

const recHeaderSize = 8

// Record types used while locating slide text.
const (
	recTypeDocument             = 0x03E8
	recTypeSlide                = 0x03EE
	recTypeSlidePersistAtom     = 0x03F3
	recTypeOutlineTextRefAtom   = 0x0F9E
	recTypeTextCharsAtom        = 0x0FA0
	recTypeTextBytesAtom        = 0x0FA8
	recTypeSlideListWithText    = 0x0FF0
	recTypeUserEditAtom         = 0x0FF5
	recTypeCurrentUserAtom      = 0x0FF6
	recTypePersistDirectoryAtom = 0x1772
)

// slideListInstanceSlides marks the SlideListWithText that holds presentation slides
// (as opposed to master or notes lists).
const slideListInstanceSlides = 0

// Rec is one record of the PowerPoint Document stream.
type Rec struct {
	Ver      uint8
	Instance uint16
	Type     uint16
	Offset   int
	Data     []byte
}

// IsContainer reports whether the record holds child records instead of an atom payload.
func (r Rec) IsContainer() bool { return r.Ver == 0xF }

// Children returns a scanner over the record's child records.
func (r Rec) Children() *RecScanner {
	return &RecScanner{data: r.Data, base: r.Offset + recHeaderSize}
}

// RecScanner walks sibling records in a byte range.
type RecScanner struct {
	data []byte
	base int
	pos  int
}

// NewRecScanner scans records from the start of data.
func NewRecScanner(data []byte) *RecScanner {
	return &RecScanner{data: data}
}

// ScanNext returns the next sibling record or io.EOF.
func (s *RecScanner) ScanNext() (Rec, error) {
	if s.pos >= len(s.data) {
		return Rec{}, io.EOF
	}
	rec, err := readRecord(s.data, s.pos)
	if err != nil {
		return Rec{}, err
	}
	rec.Offset += s.base
	s.pos += recHeaderSize + len(rec.Data)
	return rec, nil
}

// readRecord decodes the record whose header starts at off.
func readRecord(data []byte, off int) (Rec, error) {
	if off < 0 || off+recHeaderSize > len(data) {
		return Rec{}, fmt.Errorf("record header at %d out of range (%d bytes)", off, len(data))
	}

	verInstance := binary.LittleEndian.Uint16(data[off:])
	rec := Rec{
		Ver:      uint8(verInstance & 0x000F),
		Instance: verInstance >> 4,
		Type:     binary.LittleEndian.Uint16(data[off+2:]),
		Offset:   off,
	}

	size := int(binary.LittleEndian.Uint32(data[off+4:]))
	start := off + recHeaderSize
	if size < 0 || size > len(data)-start {
		return Rec{}, fmt.Errorf("record 0x%04X at %d: length %d exceeds stream", rec.Type, off, size)
	}
	rec.Data = data[start : start+size]
	return rec, nil
}

// walk visits rec and all of its descendants depth-first in stream order.
func walk(rec Rec, visit func(Rec) error) error {
	if err := visit(rec); err != nil {
		return err
	}
	if !rec.IsContainer() {
		return nil
	}

	children := rec.Children()
	for {
		child, err := children.ScanNext()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := walk(child, visit); err != nil {
			return err
		}
	}
}

func atomUint32(rec Rec, at int) (uint32, error) {
	if at+4 > len(rec.Data) {
		return 0, fmt.Errorf("record 0x%04X: payload too short (%d bytes)", rec.Type, len(rec.Data))
	}
	return binary.LittleEndian.Uint32(rec.Data[at:]), nil
}
