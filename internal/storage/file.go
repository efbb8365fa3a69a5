package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/todo/internal/model"
)

// Load reads the collections file at path. A missing file yields an empty
// state and no error.
func Load(path string) ([]model.CollectionData, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.CollectionData{}, nil
		}
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	out, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// Save writes collections to path through a temp file and rename.
func Save(path string, collections []model.CollectionData) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, collections); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
