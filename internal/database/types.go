package database

import (
	"context"
	"reflect"
)

// Column is the raw metadata of one result column of the probe query.
type Column struct {
	Name     string
	DataType string       // database type name as reported by the driver
	ScanType reflect.Type // Go type the driver scans into, may be nil
	Length   int64        // display length, 0 when unknown
}

// Table is a table or view matched by the name pattern.
type Table struct {
	Name string
	Kind string // models.KindTable or models.KindView
}

// MetadataSource is the structural metadata capability ReadSchema consumes.
type MetadataSource interface {
	GetTables(ctx context.Context, pattern string) ([]Table, error)
	GetColumns(ctx context.Context, table string) ([]Column, error)
}

// Dialect hides the SQL that differs between databases.
type Dialect interface {
	Name() string
	// TablesQuery returns a query selecting (name, kind) of every table and
	// view whose name matches the LIKE pattern, ordered by name.
	TablesQuery(pattern string) (string, []any)
	// ProbeQuery returns a query against table that yields no rows.
	ProbeQuery(table string) string
	// ColumnTypesQuery returns a query selecting (column name, declared type)
	// of table, or "" when the driver's type names are complete.
	ColumnTypesQuery(table string) (string, []any)
}
