package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
)

// MemoryFileSystem implements Provider for in-memory testing.
// Paths are normalized to forward slashes (virtual filesystem
// convention), so tests behave identically on Windows.
type MemoryFileSystem struct {
	files map[string][]byte // map of cleaned path -> content
}

// NewMemoryFileSystem creates a new in-memory filesystem with no files.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string][]byte),
	}
}

// AddFile adds a file to the in-memory filesystem, replacing any
// existing content at that path.
func (mfs *MemoryFileSystem) AddFile(name string, content string) {
	mfs.files[normalize(name)] = []byte(content)
}

// Open returns a reader over the named file's content. Each call yields
// an independent reader positioned at the start of the content.
func (mfs *MemoryFileSystem) Open(name string) (io.ReadCloser, error) {
	content, ok := mfs.files[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// normalize converts name to the forward-slash, cleaned form used as the
// map key.
func normalize(name string) string {
	return path.Clean(filepath.ToSlash(name))
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
