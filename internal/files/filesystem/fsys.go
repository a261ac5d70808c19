package filesystem

import (
	"fmt"
	"io"
	"io/fs"
)

// fsProvider adapts an io/fs.FS to the Provider interface. This covers
// embedded data (embed.FS) as well as test filesystems such as
// testing/fstest.MapFS.
type fsProvider struct {
	fsys fs.FS
}

// NewFSProvider wraps fsys as a Provider.
// Panics if fsys is nil.
func NewFSProvider(fsys fs.FS) Provider {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &fsProvider{fsys: fsys}
}

// Open opens the named file within the wrapped fs.FS. Directories are
// rejected, mirroring OSFileSystem.
func (p *fsProvider) Open(name string) (io.ReadCloser, error) {
	f, err := p.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("path is a directory, not a file: %s", name)
	}

	return f, nil
}
