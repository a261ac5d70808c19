// Package logging provides concrete implementations of the csvrec.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (the loader's default)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
