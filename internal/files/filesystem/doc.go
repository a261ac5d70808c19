// Package filesystem abstracts how the loader opens named files for
// reading, enabling testability through in-memory implementations while
// maintaining compatibility with the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//   - NewFSProvider: Adapter over any io/fs.FS (embed.FS, fstest.MapFS)
package filesystem
