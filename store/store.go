// Package store persists small plain text values, one file per key.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File keeps each key in its own file under Dir
type File struct {
	Dir string
}

// NewFile returns a store rooted at dir, creating the directory if needed
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, errors.New("store directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &File{Dir: dir}, nil
}

// Get returns the value of key. A missing key is not an error.
func (f *File) Get(key string) (string, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Set writes value to key atomically
func (f *File) Set(key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempFile, err := os.CreateTemp(f.Dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.WriteString(value + "\n"); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.Dir, key), nil
}
