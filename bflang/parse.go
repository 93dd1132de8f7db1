package bflang

type ParseOption func(*parser)

// StrictBrackets makes a ']' without a matching '[' an error. Without it,
// parsing stops at the stray bracket and keeps what came before.
func StrictBrackets() ParseOption {
	return func(p *parser) {
		p.strict = true
	}
}

// NoFold turns every operator into its own command.
func NoFold() ParseOption {
	return func(p *parser) {
		p.noFold = true
	}
}

// SourceName sets the name used in error positions.
func SourceName(name string) ParseOption {
	return func(p *parser) {
		p.name = name
	}
}

type parser struct {
	tokens []Token
	idx    int
	strict bool
	noFold bool
	name   string
}

func Parse(source string, options ...ParseOption) (Program, error) {
	p := new(parser)
	for _, option := range options {
		option(p)
	}
	p.tokens = tokenize(source, !p.noFold)
	program, _, err := p.parse(0)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// parse consumes tokens up to and including the ']' closing this level.
// The returned bool reports whether that ']' was seen.
func (p *parser) parse(depth int) (Program, bool, error) {
	program := Program{}
	for p.idx < len(p.tokens) {
		token := p.tokens[p.idx]
		p.idx++

		switch token.Char {
		case '>':
			program = append(program, Command{Kind: MoveRight, Count: token.Count, Pos: token.Pos})
		case '<':
			program = append(program, Command{Kind: MoveLeft, Count: token.Count, Pos: token.Pos})
		case '+':
			program = append(program, Command{Kind: AddValue, Count: token.Count, Pos: token.Pos})
		case '-':
			program = append(program, Command{Kind: SubValue, Count: token.Count, Pos: token.Pos})
		case '.':
			program = append(program, Command{Kind: Output, Count: 1, Pos: token.Pos})
		case ',':
			program = append(program, Command{Kind: Input, Count: 1, Pos: token.Pos})

		case '[':
			body, closed, err := p.parse(depth + 1)
			if err != nil {
				return nil, false, err
			}
			if !closed {
				return nil, false, &MissingClosingBracketError{
					Depth:  depth + 1,
					Pos:    token.Pos,
					Source: p.name,
				}
			}
			program = append(program, Command{Kind: Loop, Count: 1, Body: body, Pos: token.Pos})

		case ']':
			if depth == 0 && p.strict {
				return nil, false, &UnexpectedClosingBracketError{
					Pos:    token.Pos,
					Source: p.name,
				}
			}
			return program, true, nil
		}
	}
	return program, false, nil
}
