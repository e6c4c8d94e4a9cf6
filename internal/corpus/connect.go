package corpus

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	mssql "github.com/microsoft/go-mssqldb"
	"golang.org/x/net/proxy"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// OpenSocks5MSSQL opens a *sql.DB against a SQL Server DSN, routed through
// a SOCKS5 proxy when the PROMPTPRUNE_CORPUS_SOCKS environment variable is
// set. Ported directly from the teacher's cli/cmd/config.go OpenSocks5Sql,
// generalized from a hardcoded SQL_SOCKS env var to the corpus store's own
// namespace.
func OpenSocks5MSSQL(dsn string) (*sql.DB, error) {
	if !hasPrefix(dsn, "sqlserver://") {
		return nil, errors.New("corpus: expected sqlserver:// DSN")
	}
	connector, err := mssql.NewConnector(dsn)
	if err != nil {
		return nil, err
	}

	if socksAddr := os.Getenv("PROMPTPRUNE_CORPUS_SOCKS"); socksAddr != "" {
		dialer, dialErr := proxy.SOCKS5("tcp", socksAddr, nil, nil)
		if dialErr != nil {
			return nil, fmt.Errorf("could not connect with SOCKS5 to %s: %w", socksAddr, dialErr)
		}
		connector.Dialer = dialer.(proxy.ContextDialer)
	}

	return sql.OpenDB(connector), nil
}

// OpenPostgres opens a *sql.DB against a Postgres DSN via the pgx stdlib
// driver, for use with NewPGStore.
func OpenPostgres(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
