package bflang

import "fmt"

// MissingClosingBracketError reports a source that ended with loops still
// open. Depth is the number of unclosed levels, Pos the innermost '['.
type MissingClosingBracketError struct {
	Depth  int
	Pos    Pos
	Source string
}

func (e *MissingClosingBracketError) Error() string {
	return fmt.Sprintf("missing closing bracket: depth %d at %s", e.Depth, location(e.Source, e.Pos))
}

// UnexpectedClosingBracketError is only returned in strict mode.
type UnexpectedClosingBracketError struct {
	Pos    Pos
	Source string
}

func (e *UnexpectedClosingBracketError) Error() string {
	return fmt.Sprintf("unexpected closing bracket at %s", location(e.Source, e.Pos))
}

func location(source string, pos Pos) string {
	if source == "" {
		return pos.String()
	}
	return source + ":" + pos.String()
}
