package filesystem

import (
	"io"
	"os"
)

// GacheFs satisfies the gache.FileSystem interface on top of the active
// backend, so gache-managed caches land on whatever filesystem is in use.
type GacheFs struct{}

// OpenFile opens a file on the current backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates a directory tree on the current backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
