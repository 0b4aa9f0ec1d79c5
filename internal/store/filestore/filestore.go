// Package filestore keeps the rule document in a file on local storage.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acpilot/acpilot/internal/store"
)

var _ store.Backend = &FileStore{}

// FileStore stores the rule document at Path. Writes go to a temporary file, which then replaces the document, so a
// failed write never leaves a partial document behind.
type FileStore struct {
	Path string
}

func (f FileStore) Load(_ context.Context) ([]byte, error) {
	body, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, store.ErrNoDocument
	}
	return body, err
}

func (f FileStore) Save(_ context.Context, body []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(body); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return os.Rename(tmp.Name(), f.Path)
}
