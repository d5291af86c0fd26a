package utils

import (
	"io"
	"os"
	"path/filepath"
)

// FileStore persists uploaded images on local disk.
type FileStore struct {
	Dir string
}

// NewFileStore creates the upload directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

// Save writes an uploaded file under the given name
func (fs *FileStore) Save(name string, r io.Reader) error {
	dst, err := os.Create(filepath.Join(fs.Dir, filepath.Base(name)))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, r)
	return err
}

// Open returns a stored file for reading. Path traversal is rejected by
// reducing the name to its base component.
func (fs *FileStore) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(fs.Dir, filepath.Base(name)))
}
