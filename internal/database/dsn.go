package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/go-sql-driver/mysql"

	"vo-scaffolding/internal/config"
)

// Registered database/sql driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
	DriverSQLite3  = "sqlite3"
)

// JDBC driver classes accepted for compatibility with existing configuration files.
var driverAliases = map[string]string{
	"com.mysql.jdbc.Driver":    DriverMySQL,
	"com.mysql.cj.jdbc.Driver": DriverMySQL,
	"org.mariadb.jdbc.Driver":  DriverMySQL,
	"org.postgresql.Driver":    DriverPostgres,
	"org.sqlite.JDBC":          DriverSQLite,
}

// ResolveDriver maps a configured driver identifier to a registered
// database/sql driver name.
func ResolveDriver(name string) (string, error) {
	driver := strings.TrimSpace(name)
	if alias, ok := driverAliases[driver]; ok {
		driver = alias
	}
	if !slices.Contains(sql.Drivers(), driver) {
		return "", fmt.Errorf("database driver %q is not available (registered: %s)",
			name, strings.Join(sql.Drivers(), ", "))
	}
	return driver, nil
}

// BuildDSN turns the configured URL into a data source name for driver,
// translating JDBC URLs and injecting the configured credentials.
func BuildDSN(driver string, conn config.Connection) (string, error) {
	switch driver {
	case DriverMySQL:
		return mysqlDSN(conn)
	case DriverPostgres, DriverPgx:
		return postgresDSN(conn)
	case DriverSQLite, DriverSQLite3:
		return strings.TrimPrefix(conn.URL, "jdbc:sqlite:"), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func mysqlDSN(conn config.Connection) (string, error) {
	var cfg *mysql.Config
	if rest, ok := strings.CutPrefix(conn.URL, "jdbc:"); ok {
		u, err := url.Parse(rest)
		if err != nil {
			return "", fmt.Errorf("invalid JDBC url: %w", err)
		}
		cfg = mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
	} else {
		parsed, err := mysql.ParseDSN(conn.URL)
		if err != nil {
			return "", err
		}
		cfg = parsed
	}

	if conn.UserName != "" {
		cfg.User = conn.UserName
	}
	if conn.Password != "" {
		cfg.Passwd = conn.Password
	}
	return cfg.FormatDSN(), nil
}

func postgresDSN(conn config.Connection) (string, error) {
	dsn := conn.URL
	jdbc := false
	if rest, ok := strings.CutPrefix(dsn, "jdbc:"); ok {
		dsn, jdbc = rest, true
	}

	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		// key=value connection string
		if conn.UserName != "" {
			dsn += " user=" + quoteValue(conn.UserName)
		}
		if conn.Password != "" {
			dsn += " password=" + quoteValue(conn.Password)
		}
		return strings.TrimSpace(dsn), nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid postgres url: %w", err)
	}
	if jdbc {
		// JDBC properties mean nothing to libpq.
		u.RawQuery = ""
	}

	user, password := "", ""
	if u.User != nil {
		user = u.User.Username()
		password, _ = u.User.Password()
	}
	if conn.UserName != "" {
		user = conn.UserName
	}
	if conn.Password != "" {
		password = conn.Password
	}
	switch {
	case password != "":
		u.User = url.UserPassword(user, password)
	case user != "":
		u.User = url.User(user)
	}
	return u.String(), nil
}

func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
