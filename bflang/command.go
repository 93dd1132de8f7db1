package bflang

import "strings"

type Kind uint8

const (
	KindInvalid Kind = iota
	MoveRight
	MoveLeft
	AddValue
	SubValue
	Output
	Input
	Loop
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	MoveRight:   "move-right",
	MoveLeft:    "move-left",
	AddValue:    "add-value",
	SubValue:    "sub-value",
	Output:      "output",
	Input:       "input",
	Loop:        "loop",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

var kindChars = [...]byte{
	MoveRight: '>',
	MoveLeft:  '<',
	AddValue:  '+',
	SubValue:  '-',
	Output:    '.',
	Input:     ',',
}

// Command is one node of a parsed program. Count is the fold count of the
// operator; Body is set only for Loop.
type Command struct {
	Kind  Kind
	Count int
	Body  Program
	Pos   Pos
}

type Program []Command

type Stats struct {
	Commands int
	Loops    int
	MaxDepth int
	// Operators is the number of source operators the commands stand for,
	// loop brackets excluded.
	Operators int
}

func (p Program) Stats() (ret Stats) {
	p.stats(&ret, 0)
	return
}

func (p Program) stats(s *Stats, depth int) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	for _, cmd := range p {
		s.Commands++
		if cmd.Kind == Loop {
			s.Loops++
			cmd.Body.stats(s, depth+1)
			continue
		}
		s.Operators += cmd.Count
	}
}

// String renders the program as operator-only source. Parsing the result
// yields the same tree.
func (p Program) String() string {
	var sb strings.Builder
	p.write(&sb)
	return sb.String()
}

func (p Program) write(sb *strings.Builder) {
	for _, cmd := range p {
		if cmd.Kind == Loop {
			sb.WriteByte('[')
			cmd.Body.write(sb)
			sb.WriteByte(']')
			continue
		}
		if int(cmd.Kind) >= len(kindChars) || kindChars[cmd.Kind] == 0 {
			continue
		}
		for range cmd.Count {
			sb.WriteByte(kindChars[cmd.Kind])
		}
	}
}

// Equal reports whether two programs have the same shape and counts.
// Positions are ignored.
func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}
	for i, cmd := range p {
		o := other[i]
		if cmd.Kind != o.Kind || cmd.Count != o.Count {
			return false
		}
		if !cmd.Body.Equal(o.Body) {
			return false
		}
	}
	return true
}
