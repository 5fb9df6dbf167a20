package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalDisk is the local-filesystem driver.
type LocalDisk struct {
	root    string // root directory
	baseURL string // public URL prefix for URL()
}

// NewLocalDisk creates root if needed and returns a disk serving files under baseURL.
func NewLocalDisk(root, baseURL string) (*LocalDisk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage/local: create root %s: %w", root, err)
	}
	return &LocalDisk{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// full resolves path inside root, refusing anything that escapes it.
func (d *LocalDisk) full(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", fmt.Errorf("storage/local: empty path: %w", ErrNotFound)
	}
	return filepath.Join(d.root, clean), nil
}

// Put writes r to path under the root directory.
func (d *LocalDisk) Put(path string, r io.Reader, _ string) error {
	full, err := d.full(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage/local: close %s: %w", path, err)
	}
	return nil
}

// GetStream opens the file at path. ErrNotFound if it does not exist.
func (d *LocalDisk) GetStream(path string) (io.ReadCloser, error) {
	full, err := d.full(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage/local: %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("storage/local: open %s: %w", path, err)
	}
	return f, nil
}

// URL returns the public URL of path.
func (d *LocalDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(path, "/")
}
