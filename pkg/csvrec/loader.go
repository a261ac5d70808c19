package csvrec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/vvka-141/csvrec/internal/files/filesystem"
	"github.com/vvka-141/csvrec/internal/logging"
)

// Loader reads delimited text files and materializes their rows as
// record sets. The zero value is not usable; construct with NewLoader.
//
// A Loader holds no per-file state and is safe for concurrent use as
// long as its file provider and logger are.
type Loader struct {
	fs     filesystem.Provider
	logger Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS makes the loader resolve paths against fsys instead of the OS
// filesystem. This covers embedded data (embed.FS) and test fixtures
// (testing/fstest.MapFS).
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fs = filesystem.NewFSProvider(fsys)
	}
}

// WithLogger installs a custom logger for loader diagnostics.
// Panics if logger is nil.
func WithLogger(logger Logger) Option {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithVerbose installs a console logger that writes per-load diagnostics
// to stderr.
func WithVerbose() Option {
	return func(l *Loader) {
		l.logger = logging.NewConsoleLogger(true)
	}
}

// NewLoader creates a Loader reading from the OS filesystem with
// logging disabled. Options override either default.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fs:     filesystem.NewOSFileSystem(),
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path with a default Loader. It is the
// path-in, records-out primitive; see Loader.Load for semantics.
func Load(path string) (RecordSet, error) {
	return NewLoader().Load(path)
}

// Load opens the file at path, consumes its first row as the header, and
// returns the remaining rows as Records in file order.
//
// The file handle is scoped to the call and released on every exit path.
// There are no retries and no partial results: Load returns the fully
// materialized set or an error.
//
// Edge cases:
//   - A header-only file yields a RecordSet with Fields set and no
//     Records.
//   - A zero-byte file has no header to consume; Load returns an empty
//     RecordSet and nil error.
//   - A row whose field count differs from the header's fails the load
//     with ErrFormat (encoding/csv's default field-count policy).
//
// Failures to open the file wrap ErrFileAccess; failures while reading
// or decoding wrap ErrFormat. Both retain the underlying cause for
// errors.Is and errors.As.
func (l *Loader) Load(path string) (RecordSet, error) {
	src, err := l.fs.Open(path)
	if err != nil {
		return RecordSet{}, fmt.Errorf("failed to open %s: %w", path, errors.Join(ErrFileAccess, err))
	}
	defer src.Close()

	l.logger.Verbose("loading records from %s", path)

	set, err := readRecords(src)
	if err != nil {
		return RecordSet{}, fmt.Errorf("failed to read %s: %w", path, errors.Join(ErrFormat, err))
	}

	l.logger.Verbose("loaded %d records with %d fields from %s", set.Len(), len(set.Fields), path)
	return set, nil
}

// readRecords consumes src as header-plus-rows delimited text.
// Duplicate header names collapse to the last occurrence, matching map
// assignment order.
func readRecords(src io.Reader) (RecordSet, error) {
	reader := csv.NewReader(src)

	header, err := reader.Read()
	if err == io.EOF {
		return RecordSet{}, nil
	}
	if err != nil {
		return RecordSet{}, err
	}

	set := RecordSet{Fields: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return RecordSet{}, err
		}

		// encoding/csv locks the field count to the header width, so a
		// successfully read row always has len(header) values.
		rec := make(Record, len(header))
		for i, field := range header {
			rec[field] = row[i]
		}
		set.Records = append(set.Records, rec)
	}

	return set, nil
}

// Verify the logging implementations satisfy the public interface.
// The assertions live here because internal/logging does not import
// this package.
var (
	_ Logger = (*logging.ConsoleLogger)(nil)
	_ Logger = (*logging.NullLogger)(nil)
)
