package bfvm

import (
	"errors"
	"io"

	"github.com/reusee/bf/bflang"
)

// IOError wraps a failure of the input source or the output sink. It aborts
// the run.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Execute runs program against state. Input bytes are read one at a time and
// only when an input command runs; end of input stores zero.
func Execute(program bflang.Program, input io.Reader, output io.Writer, state *State) error {
	m := &machine{
		state: state,
	}
	if br, ok := input.(io.ByteReader); ok {
		m.readByte = br.ReadByte
	} else {
		m.readByte = singleByteReader(input)
	}
	if bw, ok := output.(io.ByteWriter); ok {
		m.writeByte = bw.WriteByte
	} else {
		m.writeByte = singleByteWriter(output)
	}
	return m.run(program)
}

type machine struct {
	state     *State
	readByte  func() (byte, error)
	writeByte func(byte) error
}

func (m *machine) run(program bflang.Program) error {
	s := m.state
	for i := range program {
		cmd := &program[i]
		switch cmd.Kind {

		case bflang.MoveRight:
			s.MoveRight(cmd.Count)

		case bflang.MoveLeft:
			s.MoveLeft(cmd.Count)

		case bflang.AddValue:
			s.Add(cmd.Count)

		case bflang.SubValue:
			s.Sub(cmd.Count)

		case bflang.Output:
			if err := m.writeByte(s.Cell()); err != nil {
				return &IOError{
					Op:  "output",
					Err: err,
				}
			}

		case bflang.Input:
			b, err := m.readByte()
			var ioErr *IOError
			if errors.Is(err, io.EOF) {
				b = 0
			} else if errors.As(err, &ioErr) {
				// already attributed, like an output flush done by the reader
				return ioErr
			} else if err != nil {
				return &IOError{
					Op:  "input",
					Err: err,
				}
			}
			s.SetCell(b)

		case bflang.Loop:
			for s.Cell() != 0 {
				if err := m.run(cmd.Body); err != nil {
					return err
				}
			}

		}
	}
	return nil
}

const maxEmptyReads = 100

func singleByteReader(r io.Reader) func() (byte, error) {
	if r == nil {
		return func() (byte, error) {
			return 0, io.EOF
		}
	}
	var buf [1]byte
	return func() (byte, error) {
		for range maxEmptyReads {
			n, err := r.Read(buf[:])
			if n == 1 {
				return buf[0], nil
			}
			if err != nil {
				return 0, err
			}
		}
		return 0, io.ErrNoProgress
	}
}

func singleByteWriter(w io.Writer) func(byte) error {
	if w == nil {
		return func(byte) error {
			return nil
		}
	}
	var buf [1]byte
	return func(b byte) error {
		buf[0] = b
		n, err := w.Write(buf[:])
		if err == nil && n != 1 {
			err = io.ErrShortWrite
		}
		return err
	}
}
