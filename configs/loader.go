package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads cue files lazily on first use. Earlier files take precedence.
type Loader struct {
	paths    []string
	getRoots func() ([]root, error)
}

type root struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,
		getRoots: sync.OnceValues(func() ([]root, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) (ret []root, err error) {
	// values from different contexts cannot be unified
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		value := ctx.CompileBytes(content, cue.Filename(filePath))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", filePath, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("validate %s: %w", filePath, err)
			}
		}
		ret = append(ret, root{
			value: value,
			path:  filePath,
		})
	}

	return ret, nil
}

func (l Loader) Paths() []string {
	return l.paths
}

// values yields the value at path in every file that sets it, with the file
// path.
func (l Loader) values(path string) iter.Seq2[root, error] {
	return func(yield func(root, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(root{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(root{value: value, path: r.path}, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for r, err := range l.values(path) {
		if err != nil {
			return err
		}
		if err := r.value.Decode(target); err != nil {
			return fmt.Errorf("decode %s in %s: %w", path, r.path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
