package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// Dialect names.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return MySQL }

func (mysqlDialect) TablesQuery(pattern string) (string, []any) {
	query := `
		SELECT table_name,
			CASE table_type WHEN 'VIEW' THEN 'VIEW' ELSE 'TABLE' END
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
			AND table_type IN ('BASE TABLE', 'VIEW')
			AND table_name LIKE ?
		ORDER BY table_name
	`
	return query, []any{pattern}
}

func (mysqlDialect) ProbeQuery(table string) string {
	return "SELECT * FROM `" + strings.ReplaceAll(table, "`", "``") + "` LIMIT 0"
}

// The MySQL driver reports BIT and TINYINT without their width, which decides
// between Boolean and the wider types.
func (mysqlDialect) ColumnTypesQuery(table string) (string, []any) {
	query := `
		SELECT column_name, column_type
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
			AND table_name = ?
		ORDER BY ordinal_position
	`
	return query, []any{table}
}

type postgresDialect struct {
	quote func(string) string
}

func (postgresDialect) Name() string { return Postgres }

func (postgresDialect) TablesQuery(pattern string) (string, []any) {
	query := `
		SELECT table_name,
			CASE table_type WHEN 'VIEW' THEN 'VIEW' ELSE 'TABLE' END
		FROM information_schema.tables
		WHERE table_schema = current_schema()
			AND table_type IN ('BASE TABLE', 'VIEW')
			AND table_name LIKE $1
		ORDER BY table_name
	`
	return query, []any{pattern}
}

func (d postgresDialect) ProbeQuery(table string) string {
	return "SELECT * FROM " + d.quote(table) + " LIMIT 0"
}

func (postgresDialect) ColumnTypesQuery(string) (string, []any) { return "", nil }

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return SQLite }

func (sqliteDialect) TablesQuery(pattern string) (string, []any) {
	query := `
		SELECT name, upper(type)
		FROM sqlite_master
		WHERE type IN ('table', 'view')
			AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
			AND name LIKE ?
		ORDER BY name
	`
	return query, []any{pattern}
}

func (sqliteDialect) ProbeQuery(table string) string {
	return `SELECT * FROM "` + strings.ReplaceAll(table, `"`, `""`) + `" LIMIT 0`
}

func (sqliteDialect) ColumnTypesQuery(string) (string, []any) { return "", nil }

// DialectFor returns the dialect of a registered driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverMySQL:
		return mysqlDialect{}, nil
	case DriverPostgres:
		return postgresDialect{quote: pq.QuoteIdentifier}, nil
	case DriverPgx:
		return postgresDialect{quote: func(s string) string { return pgx.Identifier{s}.Sanitize() }}, nil
	case DriverSQLite, DriverSQLite3:
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
