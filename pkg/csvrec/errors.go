package csvrec

import "errors"

// Sentinel errors for the two failure classes a load can hit.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	set, err := csvrec.Load(path)
//	if errors.Is(err, csvrec.ErrFileAccess) {
//	    // path missing, unreadable, or not a regular file
//	}
var (
	// ErrFileAccess indicates the path does not exist, is not readable,
	// or does not refer to a regular file.
	ErrFileAccess = errors.New("file access failed")

	// ErrFormat indicates the content could not be interpreted as
	// delimited text, or I/O failed while reading the stream. This
	// includes rows whose field count differs from the header's.
	ErrFormat = errors.New("malformed delimited text")
)
