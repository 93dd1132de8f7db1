package debugs

import (
	"testing"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"go.starlark.net/starlark"
)

func TestTapeGlobals(t *testing.T) {
	program, err := bflang.Parse("<<++++++++[>++++++++<-]>+>>++")
	if err != nil {
		t.Fatal(err)
	}
	state := bfvm.NewState()
	if err := bfvm.Execute(program, nil, nil, state); err != nil {
		t.Fatal(err)
	}

	globals := TapeGlobals(state)
	if globals["position"] != 1 {
		t.Fatalf("got %v", globals["position"])
	}
	if globals["lowest"] != -2 {
		t.Fatalf("got %v", globals["lowest"])
	}
	cells := globals["cells"].([]int)
	if len(cells) != state.Len() {
		t.Fatalf("got %d", len(cells))
	}
	for i, c := range state.Cells() {
		if cells[i] != int(c) {
			t.Fatalf("cell %d: got %d", i, cells[i])
		}
	}
	cell := globals["cell"].(func(int) int)
	if cell(-1) != 65 {
		t.Fatalf("got %d", cell(-1))
	}
	if cell(1) != 2 {
		t.Fatalf("got %d", cell(1))
	}
	if cell(-100) != 0 || cell(100) != 0 {
		t.Fatal()
	}
	text := globals["text"].(func(int, int) string)
	if s := text(-1, 0); s != "A" {
		t.Fatalf("got %q", s)
	}
	if s := text(3, 1); s != "" {
		t.Fatalf("got %q", s)
	}

	value := toStarlarkValue(globals["position"])
	if eq, err := starlark.Equal(value, starlark.MakeInt(1)); err != nil || !eq {
		t.Fatalf("got %v", value)
	}

	// cells index to ints in scripts
	list := toStarlarkValue(globals["cells"]).(*starlark.List)
	if eq, err := starlark.Equal(list.Index(1), starlark.MakeInt(65)); err != nil || !eq {
		t.Fatalf("got %v", list.Index(1))
	}
}
