package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"bf.cue",
	".bf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	loader := configs.NewLoader(searchPaths(), schema)
	if paths := loader.Paths(); len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return loader
}

// searchPaths returns existing config files, most specific first: working
// directory, user config dir, then /etc.
func searchPaths() (paths []string) {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
