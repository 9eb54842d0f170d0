// Package main hosts the isolang CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the ISO 639 code table: exact lookups,
// two-letter code derivation, listing, name search, SQLite export, and
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on output.
//
// Results go to stdout (a rounded table, plain lines, or JSON with --json);
// logs go to stderr.
package main
