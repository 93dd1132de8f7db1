package bfvm

import (
	"encoding/gob"
	"fmt"
	"io"
)

type snapshot struct {
	Cells  []byte
	Cursor int
	Origin int
}

func (s *State) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Cells:  s.Cells(),
		Cursor: s.cursor,
		Origin: s.origin,
	}); err != nil {
		return err
	}
	return nil
}

func (s *State) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var snap snapshot
	if err := dec.Decode(&snap); err != nil {
		return err
	}
	if len(snap.Cells) == 0 {
		return fmt.Errorf("bad snapshot: empty tape")
	}
	if snap.Cursor < 0 || snap.Cursor >= len(snap.Cells) {
		return fmt.Errorf("bad snapshot: cursor %d out of range [0, %d)", snap.Cursor, len(snap.Cells))
	}
	size := len(snap.Cells)
	buf := make([]byte, size+size, size+2*size)
	copy(buf[size:], snap.Cells)
	s.buf = buf
	s.lo = size
	s.cursor = snap.Cursor
	s.origin = snap.Origin
	return nil
}
