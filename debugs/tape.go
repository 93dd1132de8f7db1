package debugs

import (
	"github.com/reusee/bf/bfvm"
)

// TapeGlobals exposes a tape to a tap session. cells lists cell values as
// ints from the lowest materialized cell; cell() is addressed by absolute
// position, so cell(0) is the cell a run started on.
func TapeGlobals(state *bfvm.State) map[string]any {
	cells := state.Cells()
	values := make([]int, len(cells))
	for i, c := range cells {
		values[i] = int(c)
	}
	origin := state.Cursor() - state.Position()
	at := func(position int) byte {
		i := position + origin
		if i < 0 || i >= len(cells) {
			// never materialized
			return 0
		}
		return cells[i]
	}
	return map[string]any{
		"cells":    values,
		"cursor":   state.Cursor(),
		"position": state.Position(),
		"lowest":   -origin,
		"highest":  len(cells) - 1 - origin,
		"cell": func(position int) int {
			return int(at(position))
		},
		"text": func(from int, to int) string {
			var buf []byte
			for p := from; p < to; p++ {
				buf = append(buf, at(p))
			}
			return string(buf)
		},
	}
}
