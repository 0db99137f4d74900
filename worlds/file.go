package worlds

import (
	"os"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	return Read(data)
}

func Save(path string, w *World) error {
	data, err := w.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return wrap(err)
	}
	return nil
}
