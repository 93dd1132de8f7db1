package debugs

import (
	"testing"

	"github.com/reusee/bf/bflang"
	"go.starlark.net/starlark"
)

func dict(pairs ...starlark.Value) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(pairs[i], pairs[i+1])
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	type position struct {
		Line   int
		Column int
		hidden bool
	}
	pos := &position{Line: 1, Column: 3}

	cases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"cells", []byte{0, 65}, starlark.Bytes("\x00A")},
		{"cell", byte(255), starlark.MakeUint(255)},
		{"string", "move-left", starlark.String("move-left")},
		{"negative position", -3, starlark.MakeInt(-3)},
		{"int64", int64(1) << 40, starlark.MakeInt64(1 << 40)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float", 0.5, starlark.Float(0.5)},
		{"list", []any{1, "a"}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"string map", map[string]any{"loops": 2}, dict(starlark.String("loops"), starlark.MakeInt(2))},
		{"int map", map[int]bool{1: true}, dict(starlark.MakeInt(1), starlark.True)},
		{"struct", *pos, dict(
			starlark.String("Line"), starlark.MakeInt(1),
			starlark.String("Column"), starlark.MakeInt(3),
		)},
		{"pointer", &pos, dict(
			starlark.String("Line"), starlark.MakeInt(1),
			starlark.String("Column"), starlark.MakeInt(3),
		)},
		{"nil pointer", (*position)(nil), starlark.None},
		{"stats", bflang.Stats{Commands: 3, Loops: 1, MaxDepth: 1, Operators: 5}, dict(
			starlark.String("Commands"), starlark.MakeInt(3),
			starlark.String("Loops"), starlark.MakeInt(1),
			starlark.String("MaxDepth"), starlark.MakeInt(1),
			starlark.String("Operators"), starlark.MakeInt(5),
		)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.input)
			eq, err := starlark.Equal(got, c.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !eq {
				t.Fatalf("got %v, want %v", got, c.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
