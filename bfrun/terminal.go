package bfrun

import (
	"bufio"
	"io"

	"github.com/reusee/bf/bfvm"
)

// Terminal buffers output and flushes it before every input read, so a
// prompt is visible before the program blocks on input.
type Terminal struct {
	in  *bufio.Reader
	out *bufio.Writer
}

var (
	_ io.ByteReader = new(Terminal)
	_ io.ByteWriter = new(Terminal)
)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

func (t *Terminal) Read(p []byte) (int, error) {
	if err := t.flushBeforeRead(); err != nil {
		return 0, err
	}
	return t.in.Read(p)
}

func (t *Terminal) ReadByte() (byte, error) {
	if err := t.flushBeforeRead(); err != nil {
		return 0, err
	}
	return t.in.ReadByte()
}

// flushBeforeRead reports flush failures as output errors, so they are not
// taken for input failures by the reader's caller.
func (t *Terminal) flushBeforeRead() error {
	if err := t.Flush(); err != nil {
		return &bfvm.IOError{
			Op:  "output",
			Err: err,
		}
	}
	return nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *Terminal) WriteByte(b byte) error {
	if err := t.out.WriteByte(b); err != nil {
		return err
	}
	if b == '\n' {
		return t.out.Flush()
	}
	return nil
}

func (t *Terminal) Flush() error {
	if t.out.Buffered() == 0 {
		return nil
	}
	return t.out.Flush()
}
