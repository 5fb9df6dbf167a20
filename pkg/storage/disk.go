// Package storage stores uploaded files on a Disk.
//
// Two drivers are available:
//   - "local": a directory on the local filesystem
//   - "s3":    S3-compatible object storage (AWS S3, MinIO, R2)
package storage

import (
	"errors"
	"io"
)

// ErrNotFound is returned when no file exists at the requested path.
var ErrNotFound = errors.New("storage: file not found")

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes r to path.
	Put(path string, r io.Reader, contentType string) error

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// URL returns the public URL for path.
	URL(path string) string
}
