// Package catalog exports the language code table to a SQLite database so
// tools outside this module can query it with plain SQL.
//
// The database carries a schema_version row; opening a file written by an
// incompatible release fails with ErrSchemaMismatch instead of silently
// mixing layouts. Exports replace every row in one transaction while holding
// an advisory lock on "<path>.lock", so concurrent exporters serialize and
// readers never observe a half-written table.
package catalog
