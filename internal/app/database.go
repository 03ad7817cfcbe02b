package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	preparedBinaryParam = "disable_prepared_binary_result"
	maxTracedQueryBytes = 512
	dbPingTimeout       = 5 * time.Second
)

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := postgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// postgresDSN adds disable_prepared_binary_result=yes to URL and key/value
// DSNs unless the caller already set the parameter.
func postgresDSN(raw string, disablePreparedBinary bool) string {
	raw = strings.TrimSpace(raw)
	if !disablePreparedBinary || raw == "" {
		return raw
	}

	if u, ok := parseDSNURL(raw); ok {
		q := u.Query()
		if q.Has(preparedBinaryParam) {
			return raw
		}
		q.Set(preparedBinaryParam, "yes")
		u.RawQuery = q.Encode()
		return u.String()
	}

	if _, ok := keywordValue(raw, preparedBinaryParam); ok {
		return raw
	}
	return raw + " " + preparedBinaryParam + "=yes"
}

// databaseName reports the dbname span attribute, or "" when the DSN does not
// name one.
func databaseName(dsn string) string {
	if u, ok := parseDSNURL(dsn); ok {
		return strings.TrimPrefix(u.Path, "/")
	}
	name, _ := keywordValue(dsn, "dbname")
	return name
}

// traceQuery collapses whitespace so multi-line statements read as one line
// in traces and cuts them at maxTracedQueryBytes.
func traceQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) <= maxTracedQueryBytes {
		return query
	}

	cut := maxTracedQueryBytes
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}

func parseDSNURL(raw string) (*url.URL, bool) {
	if !strings.HasPrefix(raw, "postgres://") && !strings.HasPrefix(raw, "postgresql://") {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

func keywordValue(dsn, key string) (string, bool) {
	for _, field := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(field, "=")
		if ok && k == key {
			return strings.Trim(v, `"'`), true
		}
	}
	return "", false
}
