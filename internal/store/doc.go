// Package store provides persistence for calculation history and saved
// measurements.
//
// It contains two implementations of domain.Store:
//   - FileStore: JSON documents under the home directory, written via temp
//     file and rename, optionally sealed with a passphrase (scrypt +
//     ChaCha20-Poly1305).
//   - SQLiteStore: a SQLite database (pure Go driver, WAL mode).
//
// All methods are concurrency-safe via internal locking. Lists are returned
// newest first. Open picks a backend by name.
package store
