package marzconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/cmounce/marzipan/configs"
	"github.com/cmounce/marzipan/logs"
	"github.com/cmounce/marzipan/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"marzipan.cue",
	".marzipan.cue",
}

// WorldDir is the directory of the world being built. Empty when compiling a
// lone object file.
type WorldDir string

func (Module) WorldDir() WorldDir {
	return ""
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	worldDir WorldDir,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	dirs := Dirs(string(worldDir), mode)
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}

// Dirs lists the directories searched for config files, most specific
// first. Tests only look at the world directory.
func Dirs(worldDir string, mode modes.Mode) (ret []string) {
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir == "" {
			return
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		if seen[dir] {
			return
		}
		seen[dir] = true
		ret = append(ret, dir)
	}

	add(worldDir)
	if mode == modes.ModeDevelopment {
		return
	}

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		add(workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		add(configDir)
	}

	// system wide dir
	add("/etc")

	return
}
