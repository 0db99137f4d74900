package includes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cmounce/marzipan/macros"
)

// Dir reads includes from the filesystem. Relative paths are tried against
// each root in order; absolute paths are read as-is.
type Dir struct {
	Roots []string
}

var _ macros.Fetcher = Dir{}

func (d Dir) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = candidates[:0]
		for _, root := range d.Roots {
			candidates = append(candidates, filepath.Join(root, filepath.FromSlash(path)))
		}
	}
	for _, candidate := range candidates {
		content, err := os.ReadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", wrap(err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("%s: %w", path, macros.ErrNotFound)
}
