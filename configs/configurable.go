package configs

import "errors"

// Configurable is a value read from config files at a fixed path.
type Configurable interface {
	ConfigPath() string
}

// Lookup decodes the first value found at the config path of T.
func Lookup[T Configurable](loader Loader) (ret T, err error) {
	err = loader.AssignFirst(ret.ConfigPath(), &ret)
	return
}

// First returns the first value at path, or the zero value when no file sets
// it. Other errors panic.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return
}
