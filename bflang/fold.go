package bflang

// Fold collapses maximal runs of identical '>' '<' '+' '-' runes into single
// counted tokens. Every other rune, comments included, passes through with a
// count of one.
func Fold(source string) []Token {
	return tokenize(source, true)
}

func tokenize(source string, fold bool) []Token {
	tokens := make([]Token, 0, len(source))
	pos := Pos{
		Line:   1,
		Column: 1,
	}
	for _, r := range source {
		if fold && foldable(r) && len(tokens) > 0 {
			if last := &tokens[len(tokens)-1]; last.Char == r {
				last.Count++
				pos.Column++
				continue
			}
		}
		tokens = append(tokens, Token{
			Char:  r,
			Count: 1,
			Pos:   pos,
		})
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return tokens
}
