package bfvm

import (
	"bytes"
	"testing"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Len() != 1 {
		t.Fatalf("got %d", s.Len())
	}
	if s.Cursor() != 0 {
		t.Fatalf("got %d", s.Cursor())
	}
	if s.Cell() != 0 {
		t.Fatalf("got %d", s.Cell())
	}
}

func TestMoveRightGrowth(t *testing.T) {
	s := NewState()
	s.MoveRight(1)
	if s.Cursor() != 1 {
		t.Fatalf("got %d", s.Cursor())
	}
	// one trailing cell stays materialized past the cursor
	if s.Len() != 3 {
		t.Fatalf("got %d", s.Len())
	}
	s.MoveRight(100)
	if s.Cursor() != 101 {
		t.Fatalf("got %d", s.Cursor())
	}
	if s.Len() != 103 {
		t.Fatalf("got %d", s.Len())
	}
	s.MoveLeft(101)
	s.MoveRight(50)
	if s.Len() != 103 {
		t.Fatalf("got %d", s.Len())
	}
}

func TestMoveLeftGrowth(t *testing.T) {
	s := NewState()
	s.Add(7)
	s.MoveLeft(3)
	if s.Cursor() != 0 {
		t.Fatalf("got %d", s.Cursor())
	}
	if s.Len() != 4 {
		t.Fatalf("got %d", s.Len())
	}
	if s.Position() != -3 {
		t.Fatalf("got %d", s.Position())
	}
	if !bytes.Equal(s.Cells(), []byte{0, 0, 0, 7}) {
		t.Fatalf("got %v", s.Cells())
	}

	s.MoveRight(3)
	if s.Cell() != 7 {
		t.Fatalf("got %d", s.Cell())
	}
	if s.Position() != 0 {
		t.Fatalf("got %d", s.Position())
	}

	// within the tape, no growth
	s.MoveLeft(2)
	if s.Cursor() != 1 || s.Len() != 5 {
		t.Fatalf("got %d %d", s.Cursor(), s.Len())
	}

	// past the low end by a large amount
	s.MoveLeft(1000)
	if s.Cursor() != 0 {
		t.Fatalf("got %d", s.Cursor())
	}
	if s.Position() != -1002 {
		t.Fatalf("got %d", s.Position())
	}
	s.MoveRight(1002)
	if s.Cell() != 7 {
		t.Fatalf("got %d", s.Cell())
	}
}

func TestMoveIdempotence(t *testing.T) {
	for _, start := range []int{0, 1, 5, 40} {
		for _, n := range []int{1, 2, 3, 17, 300} {
			s := NewState()
			s.MoveRight(start)
			for i := 0; i < 10; i++ {
				s.Add(i + 1)
				s.MoveRight(1)
			}
			s.MoveLeft(10)
			before := s.Cells()
			cursor := s.Cursor()

			s.MoveRight(n)
			s.MoveLeft(n)

			if s.Cursor() != cursor {
				t.Fatalf("start %d n %d: got cursor %d, want %d", start, n, s.Cursor(), cursor)
			}
			after := s.Cells()
			if !bytes.Equal(after[:len(before)], before) {
				t.Fatalf("start %d n %d: cells changed", start, n)
			}
			for _, c := range after[len(before):] {
				if c != 0 {
					t.Fatalf("start %d n %d: new cell not zero", start, n)
				}
			}
		}
	}
}

func TestWraparound(t *testing.T) {
	s := NewState()
	s.SetCell(255)
	s.Add(1)
	if s.Cell() != 0 {
		t.Fatalf("got %d", s.Cell())
	}
	s.Sub(1)
	if s.Cell() != 255 {
		t.Fatalf("got %d", s.Cell())
	}
	s.Add(258)
	if s.Cell() != 1 {
		t.Fatalf("got %d", s.Cell())
	}
	s.Sub(513)
	if s.Cell() != 0 {
		t.Fatalf("got %d", s.Cell())
	}
}

func TestReset(t *testing.T) {
	s := NewStateWithCapacity(8)
	s.Add(1)
	s.MoveLeft(20)
	s.Add(2)
	s.MoveRight(50)
	s.Add(3)
	s.Reset()
	if s.Len() != 1 || s.Cursor() != 0 || s.Cell() != 0 || s.Position() != 0 {
		t.Fatalf("got len %d cursor %d cell %d", s.Len(), s.Cursor(), s.Cell())
	}
	// growth after reset only sees zero cells
	s.MoveLeft(30)
	s.MoveRight(100)
	for i, c := range s.Cells() {
		if c != 0 {
			t.Fatalf("cell %d is %d", i, c)
		}
	}

	var zero State
	zero.Reset()
	if zero.Len() != 1 {
		t.Fatalf("got %d", zero.Len())
	}
}

func TestCellsIsCopy(t *testing.T) {
	s := NewState()
	cells := s.Cells()
	cells[0] = 42
	if s.Cell() != 0 {
		t.Fatal("should not alias")
	}
}
