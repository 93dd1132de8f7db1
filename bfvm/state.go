package bfvm

// State is the tape and cursor of one run.
//
// The materialized tape is buf[lo:]. Cells in buf[:lo] are spare headroom
// for growth at the low end and are always zero.
type State struct {
	buf    []byte
	lo     int
	cursor int
	// number of cells prepended since creation or reset
	origin int
}

func NewState() *State {
	return NewStateWithCapacity(0)
}

// NewStateWithCapacity reserves headroom of n cells at each end.
func NewStateWithCapacity(n int) *State {
	s := new(State)
	s.init(n)
	return s
}

func (s *State) init(n int) {
	if n < 1 {
		n = 1
	}
	s.buf = make([]byte, n+1, 2*n+1)
	s.lo = n
	s.cursor = 0
	s.origin = 0
}

// Reset returns the state to a single zero cell, keeping allocated memory.
func (s *State) Reset() {
	if s.buf == nil {
		s.init(0)
		return
	}
	clear(s.buf[:cap(s.buf)])
	headroom := cap(s.buf) / 2
	s.buf = s.buf[:headroom+1]
	s.lo = headroom
	s.cursor = 0
	s.origin = 0
}

func (s *State) Len() int {
	return len(s.buf) - s.lo
}

func (s *State) Cursor() int {
	return s.cursor
}

// Position is the cursor coordinate relative to the initial cell. It does not
// change when cells are prepended.
func (s *State) Position() int {
	return s.cursor - s.origin
}

func (s *State) Cell() byte {
	return s.buf[s.lo+s.cursor]
}

func (s *State) SetCell(v byte) {
	s.buf[s.lo+s.cursor] = v
}

// Cells returns a copy of the materialized tape.
func (s *State) Cells() []byte {
	ret := make([]byte, s.Len())
	copy(ret, s.buf[s.lo:])
	return ret
}

func (s *State) MoveRight(n int) {
	s.cursor += n
	if want := s.cursor + 2; want > s.Len() {
		s.growHigh(want - s.Len())
	}
}

func (s *State) MoveLeft(n int) {
	if n > s.cursor {
		s.growLow(n - s.cursor)
		s.cursor = 0
		return
	}
	s.cursor -= n
}

func (s *State) Add(n int) {
	s.buf[s.lo+s.cursor] += byte(n)
}

func (s *State) Sub(n int) {
	s.buf[s.lo+s.cursor] -= byte(n)
}

func (s *State) growHigh(n int) {
	if len(s.buf)+n <= cap(s.buf) {
		// spare capacity is zero
		s.buf = s.buf[:len(s.buf)+n]
		return
	}
	size := s.Len() + n
	newBuf := make([]byte, s.lo+size, s.lo+2*size)
	copy(newBuf[s.lo:], s.buf[s.lo:])
	s.buf = newBuf
}

func (s *State) growLow(n int) {
	s.origin += n
	if n <= s.lo {
		s.lo -= n
		return
	}
	size := s.Len() + n
	headroom := size
	newBuf := make([]byte, headroom+size, headroom+size+(cap(s.buf)-len(s.buf)))
	copy(newBuf[headroom+n:], s.buf[s.lo:])
	s.buf = newBuf
	s.lo = headroom
}
