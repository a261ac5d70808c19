package filesystem

import "io"

// Provider opens named files for reading.
type Provider interface {
	// Open opens the named file. The caller owns the returned ReadCloser
	// and must close it. Open fails if the name does not exist, is not
	// readable, or refers to a directory.
	Open(name string) (io.ReadCloser, error)
}
