package ppt

import (
	"errors"
	"fmt"
)

const (
	headerTokenPlain     = 0xE391C05F
	headerTokenEncrypted = 0xF3D1C4DF
)

// CurrentUser mirrors the fixed part of the CurrentUserAtom in the "Current User" stream.
type CurrentUser struct {
	Size                uint32
	HeaderToken         uint32
	OffsetToCurrentEdit uint32
}

// Encrypted reports whether the document stream is protected.
func (c CurrentUser) Encrypted() bool { return c.HeaderToken == headerTokenEncrypted }

func readCurrentUser(stream []byte) (CurrentUser, error) {
	var cu CurrentUser

	rec, err := readRecord(stream, 0)
	if err != nil {
		return cu, fmt.Errorf("read current user record: %w", err)
	}
	if rec.Type != recTypeCurrentUserAtom {
		return cu, fmt.Errorf("unexpected current user record type 0x%04X", rec.Type)
	}

	if cu.Size, err = atomUint32(rec, 0); err != nil {
		return cu, fmt.Errorf("read size: %w", err)
	}
	if cu.HeaderToken, err = atomUint32(rec, 4); err != nil {
		return cu, fmt.Errorf("read header token: %w", err)
	}
	if cu.OffsetToCurrentEdit, err = atomUint32(rec, 8); err != nil {
		return cu, fmt.Errorf("read current edit offset: %w", err)
	}

	if cu.HeaderToken != headerTokenPlain && cu.HeaderToken != headerTokenEncrypted {
		return cu, fmt.Errorf("unexpected header token 0x%08X", cu.HeaderToken)
	}
	if cu.Encrypted() {
		return cu, errors.New("encrypted presentations are not supported")
	}
	return cu, nil
}

// UserEdit holds the UserEditAtom fields needed to rebuild the persist directory.
type UserEdit struct {
	OffsetLastEdit         uint32
	OffsetPersistDirectory uint32
	DocPersistIDRef        uint32
}

func readUserEdit(stream []byte, off uint32) (UserEdit, error) {
	var ue UserEdit

	rec, err := readRecord(stream, int(off))
	if err != nil {
		return ue, fmt.Errorf("read user edit at %d: %w", off, err)
	}
	if rec.Type != recTypeUserEditAtom {
		return ue, fmt.Errorf("expected user edit atom at %d, got 0x%04X", off, rec.Type)
	}

	// lastSlideIdRef(4) version(2) minorVersion(1) majorVersion(1) precede offsetLastEdit.
	if ue.OffsetLastEdit, err = atomUint32(rec, 8); err != nil {
		return ue, err
	}
	if ue.OffsetPersistDirectory, err = atomUint32(rec, 12); err != nil {
		return ue, err
	}
	if ue.DocPersistIDRef, err = atomUint32(rec, 16); err != nil {
		return ue, err
	}
	return ue, nil
}
