// Package catalog provides table and column handles for grouping queries.
//
// A Table wraps an Arrow schema and exposes column existence and identity
// lookups. Column handles carry the column name and Arrow type; the rowgroup
// package resolves grouping requests against them before building SQL.
//
// The package also maps Arrow types to DuckDB column types and generates
// CREATE TABLE / INSERT statements so tests and examples can stand up
// DuckDB fixtures from the same handle the query builder uses.
package catalog
