package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"vo-scaffolding/internal/apperr"
	"vo-scaffolding/internal/config"
)

// Scanner reads structural metadata from a live database.
type Scanner struct {
	db      *sql.DB
	dialect Dialect
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// NewScannerWithDB wraps an already opened database.
func NewScannerWithDB(db *sql.DB, dialect Dialect) *Scanner {
	return &Scanner{db: db, dialect: dialect}
}

// Connect resolves the driver, opens the database and checks it is reachable.
func (s *Scanner) Connect(ctx context.Context, conn config.Connection) error {
	driver, err := ResolveDriver(conn.Driver)
	if err != nil {
		return apperr.Connectivity("loading driver", err)
	}

	dialect, err := DialectFor(driver)
	if err != nil {
		return apperr.Connectivity("loading driver", err)
	}

	dsn, err := BuildDSN(driver, conn)
	if err != nil {
		return apperr.Connectivity("building connection string", err)
	}

	db, err := open(driver, dsn)
	if err != nil {
		return apperr.Connectivity("error connecting to database", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return apperr.Connectivity("error pinging database", err)
	}

	s.db = db
	s.dialect = dialect
	return nil
}

func open(driver, dsn string) (*sql.DB, error) {
	if driver != DriverPgx {
		return sql.Open(driver, dsn)
	}

	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDB(*connConfig), nil
}

// Disconnect releases the connection pool. Errors are logged and dropped.
func (s *Scanner) Disconnect() {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		log.Printf("Warning: closing database: %v", err)
	}
	s.db = nil
}

// Dialect returns the dialect selected by Connect.
func (s *Scanner) Dialect() Dialect {
	return s.dialect
}

// GetTables lists the tables and views whose name matches the LIKE pattern.
func (s *Scanner) GetTables(ctx context.Context, pattern string) ([]Table, error) {
	if pattern == "" {
		pattern = "%"
	}

	query, args := s.dialect.TablesQuery(pattern)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tables: %w", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.Name, &t.Kind); err != nil {
			return nil, fmt.Errorf("error scanning tables: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error querying tables: %w", err)
	}

	return tables, nil
}

// GetColumns probes table with a query returning no rows and reports its
// result columns in natural order. Declared column types replace the
// driver's type names when the dialect provides them.
func (s *Scanner) GetColumns(ctx context.Context, table string) ([]Column, error) {
	declared, err := s.declaredTypes(ctx, table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.ProbeQuery(table))
	if err != nil {
		return nil, fmt.Errorf("error probing table %s: %w", table, err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", table, err)
	}

	columns := make([]Column, 0, len(types))
	for _, ct := range types {
		col := Column{
			Name:     ct.Name(),
			DataType: ct.DatabaseTypeName(),
			ScanType: ct.ScanType(),
		}
		if length, ok := ct.Length(); ok && length > 0 && length < math.MaxInt32 {
			col.Length = length
		}
		if dataType := declared[strings.ToLower(col.Name)]; dataType != "" {
			col.DataType = strings.ToUpper(dataType)
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error probing table %s: %w", table, err)
	}

	return columns, nil
}

// declaredTypes maps lower-cased column names to their declared types.
func (s *Scanner) declaredTypes(ctx context.Context, table string) (map[string]string, error) {
	query, args := s.dialect.ColumnTypesQuery(table)
	if query == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error reading column types of %s: %w", table, err)
	}
	defer rows.Close()

	declared := make(map[string]string)
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return nil, fmt.Errorf("error scanning column types of %s: %w", table, err)
		}
		declared[strings.ToLower(name)] = dataType
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading column types of %s: %w", table, err)
	}

	return declared, nil
}
