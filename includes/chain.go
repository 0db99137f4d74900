package includes

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmounce/marzipan/macros"
)

func IsURL(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://")
}

// Chain sends URLs to Remote and everything else to Local.
type Chain struct {
	Local  macros.Fetcher
	Remote macros.Fetcher
}

var _ macros.Fetcher = Chain{}

func (c Chain) Fetch(ctx context.Context, path string) (string, error) {
	fetcher := c.Local
	if IsURL(path) {
		fetcher = c.Remote
	}
	if fetcher == nil {
		return "", fmt.Errorf("%s: %w", path, macros.ErrNotFound)
	}
	return fetcher.Fetch(ctx, path)
}

// Map serves includes from memory.
type Map map[string]string

var _ macros.Fetcher = Map{}

func (m Map) Fetch(_ context.Context, path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, macros.ErrNotFound)
	}
	return text, nil
}
