package includes

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cmounce/marzipan/macros"
)

// maxHTTPSize bounds the body read from a remote include.
const maxHTTPSize = 1 << 20

// HTTP fetches includes given as http:// or https:// URLs.
type HTTP struct {
	Client *http.Client
}

var _ macros.Fetcher = HTTP{}

func (h HTTP) Fetch(ctx context.Context, url string) (string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wrap(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", wrap(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%s: %w", url, macros.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("%s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHTTPSize+1))
	if err != nil {
		return "", wrap(err)
	}
	if len(body) > maxHTTPSize {
		return "", fmt.Errorf("%s: larger than %d bytes", url, maxHTTPSize)
	}
	return string(body), nil
}
