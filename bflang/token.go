package bflang

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a source rune with its repeat count. Only the four movement and
// value operators ever carry a count above one.
type Token struct {
	Char  rune
	Count int
	Pos   Pos
}

func foldable(r rune) bool {
	switch r {
	case '>', '<', '+', '-':
		return true
	}
	return false
}
