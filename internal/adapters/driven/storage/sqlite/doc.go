// Package sqlite provides the SQLite-backed report archive.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Finalized reports are stored as a header
// row plus one row per written cell, so a report can be listed without loading its
// cells.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files;
// applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.fieldreport/data/reports.db
package sqlite
