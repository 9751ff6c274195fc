// Package file keeps each blob in its own JSON file under a directory.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kjk/common/atomicfile"
)

var ErrInvalidKey = errors.New("invalid blob key")

type DefaultBlobRepository struct {
	dir string
}

func NewBlobRepository(dir string) (*DefaultBlobRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DefaultBlobRepository{dir: dir}, nil
}

func (b *DefaultBlobRepository) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(b.dir, key+".json"), nil
}

// Load returns nil, nil when the blob file does not exist.
func (b *DefaultBlobRepository) Load(key string) ([]byte, error) {
	path, err := b.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Save replaces the blob atomically: readers see either the old or the
// new content, never a partial write.
func (b *DefaultBlobRepository) Save(key string, value []byte) error {
	path, err := b.path(key)
	if err != nil {
		return err
	}

	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if _, err := f.Write(value); err != nil {
		return err
	}
	return f.Close()
}
