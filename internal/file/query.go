// Copyright (c) 2025 Neomantra Corp

package file

import (
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// QueryParquet runs sql against an in-memory DuckDB connection with
// parquetPath registered as the view name "records", returning the result
// rows as a slice of column-name->value maps. This is the ad hoc SQL
// surface spec's Non-goals leave room for once a stream has been
// transcoded to Parquet.
func QueryParquet(parquetPath string, sql_ string) ([]map[string]any, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	// Security hardening for a read-only, no-network posture: no extension
	// autoloading, no remote filesystem access, and the view is the only
	// writable surface.
	for _, stmt := range []string{
		"SET autoinstall_known_extensions = false",
		"SET autoload_known_extensions = false",
		"SET allow_community_extensions = false",
		"SET disabled_filesystems = 'HTTPFileSystem'",
	} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("failed to configure duckdb (%s): %w", stmt, err)
		}
	}

	createView := fmt.Sprintf("CREATE VIEW records AS SELECT * FROM read_parquet(%s)", sqlLiteral(parquetPath))
	if _, err := db.Exec(createView); err != nil {
		return nil, fmt.Errorf("failed to create view over %s: %w", parquetPath, err)
	}
	db.Exec("SET lock_configuration = true")

	rows, err := db.Query(sql_)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func sqlLiteral(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\'', '\'')
		} else {
			out = append(out, s[i])
		}
	}
	out = append(out, '\'')
	return string(out)
}
