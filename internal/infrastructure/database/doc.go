// Package database manages the SQLite connection and schema migrations
// for Alert Console.
//
// The connection is opened with WAL mode and a busy timeout, restricted
// to a single writer (SQLite's natural model), and file permissions are
// tightened to owner-only since the database holds password hashes.
// Migrations are .sql files embedded into the binary and applied in
// version order, each in its own transaction.
package database
