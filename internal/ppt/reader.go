package ppt

import (
	"fmt"
	"io"

	"github.com/richardlehane/mscfb"
)

const (
	streamCurrentUser = "Current User"
	streamDocument    = "PowerPoint Document"
)

// Reader wraps the streams of an open PowerPoint 97-2003 presentation.
type Reader struct {
	document    []byte
	CurrentUser CurrentUser
	persist     map[uint32]uint32
	docRef      uint32
}

// OpenReader opens a .ppt compound file and indexes its persist directory.
func OpenReader(ra io.ReaderAt) (*Reader, error) {
	streams, err := readStreams(ra, streamCurrentUser, streamDocument)
	if err != nil {
		return nil, err
	}
	return newReader(streams[streamCurrentUser], streams[streamDocument])
}

// readStreams loads the named top-level streams from the OLE container.
func readStreams(ra io.ReaderAt, names ...string) (map[string][]byte, error) {
	doc, err := mscfb.New(ra)
	if err != nil {
		return nil, fmt.Errorf("failed to open compound file: %w", err)
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	streams := make(map[string][]byte, len(names))
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if len(entry.Path) > 0 || !wanted[entry.Name] {
			continue
		}
		data, err := io.ReadAll(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to read stream %s: %w", entry.Name, err)
		}
		streams[entry.Name] = data
	}

	for _, n := range names {
		if _, ok := streams[n]; !ok {
			return nil, fmt.Errorf("stream %s not found", n)
		}
	}
	return streams, nil
}

func newReader(currentUser, document []byte) (*Reader, error) {
	cu, err := readCurrentUser(currentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read Current User: %w", err)
	}

	r := &Reader{
		document:    document,
		CurrentUser: cu,
		persist:     make(map[uint32]uint32),
	}
	if err := r.loadPersistDirectory(); err != nil {
		return nil, err
	}
	return r, nil
}

// loadPersistDirectory follows the user edit chain from the newest edit backwards.
// Entries from newer edits shadow older ones.
func (r *Reader) loadPersistDirectory() error {
	visited := make(map[uint32]bool)
	offset := r.CurrentUser.OffsetToCurrentEdit
	first := true

	for {
		if visited[offset] {
			return fmt.Errorf("user edit chain loops at offset %d", offset)
		}
		visited[offset] = true

		edit, err := readUserEdit(r.document, offset)
		if err != nil {
			return err
		}
		if first {
			r.docRef = edit.DocPersistIDRef
			first = false
		}
		if err := r.mergePersistDirectory(edit.OffsetPersistDirectory); err != nil {
			return err
		}

		if edit.OffsetLastEdit == 0 {
			return nil
		}
		offset = edit.OffsetLastEdit
	}
}

func (r *Reader) mergePersistDirectory(off uint32) error {
	rec, err := readRecord(r.document, int(off))
	if err != nil {
		return fmt.Errorf("read persist directory at %d: %w", off, err)
	}
	if rec.Type != recTypePersistDirectoryAtom {
		return fmt.Errorf("expected persist directory at %d, got 0x%04X", off, rec.Type)
	}

	for pos := 0; pos < len(rec.Data); {
		head, err := atomUint32(rec, pos)
		if err != nil {
			return err
		}
		pos += 4

		persistID := head & 0x000FFFFF
		count := head >> 20
		for i := uint32(0); i < count; i++ {
			offset, err := atomUint32(rec, pos)
			if err != nil {
				return err
			}
			pos += 4
			if _, seen := r.persist[persistID+i]; !seen {
				r.persist[persistID+i] = offset
			}
		}
	}
	return nil
}

// recordByPersistID resolves a persist object reference to its record.
func (r *Reader) recordByPersistID(id uint32, wantType uint16) (Rec, error) {
	off, ok := r.persist[id]
	if !ok {
		return Rec{}, fmt.Errorf("persist object %d not found", id)
	}
	rec, err := readRecord(r.document, int(off))
	if err != nil {
		return Rec{}, err
	}
	if rec.Type != wantType {
		return Rec{}, fmt.Errorf("persist object %d: expected record 0x%04X, got 0x%04X", id, wantType, rec.Type)
	}
	return rec, nil
}

// slideEntry is one presentation slide as listed by the document's SlideListWithText.
type slideEntry struct {
	persistID    uint32
	placeholders []string
}

// slideEntries returns the slides of the document in presentation order.
func (r *Reader) slideEntries() ([]slideEntry, error) {
	doc, err := r.recordByPersistID(r.docRef, recTypeDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to locate document container: %w", err)
	}

	children := doc.Children()
	for {
		rec, err := children.ScanNext()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan document container: %w", err)
		}
		if rec.Type == recTypeSlideListWithText && rec.Instance == slideListInstanceSlides {
			return readSlideList(rec)
		}
	}
}

func readSlideList(list Rec) ([]slideEntry, error) {
	var entries []slideEntry

	children := list.Children()
	for {
		rec, err := children.ScanNext()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan slide list: %w", err)
		}

		switch {
		case rec.Type == recTypeSlidePersistAtom:
			ref, err := atomUint32(rec, 0)
			if err != nil {
				return nil, err
			}
			entries = append(entries, slideEntry{persistID: ref})
		case isTextAtom(rec) && len(entries) > 0:
			text, err := decodeTextAtom(rec)
			if err != nil {
				return nil, err
			}
			last := &entries[len(entries)-1]
			last.placeholders = append(last.placeholders, text)
		}
	}
}
