package csvfixture

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Execer is satisfied by *sql.DB, *sql.Tx and *sql.Conn
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// StatementsFrom rebuilds one SQL statement per tuple. Table-format
// fixtures split unquoted commas into cells, so the cells are joined back
// with commas. Blank statements are dropped.
func StatementsFrom(tuples []Tuple) []string {
	statements := make([]string, 0, len(tuples))
	for _, tuple := range tuples {
		statement := strings.TrimSpace(strings.Join(tuple.Raw(), string(csvDelimiter)))
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}

// ExecStatements runs the statements of a LoadTableFormat(path, true)
// fixture in order and returns how many succeeded. The first failing
// statement stops execution.
func ExecStatements(ctx context.Context, db Execer, tuples []Tuple) (int, error) {
	executed := 0
	for i, statement := range StatementsFrom(tuples) {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return executed, newErrorContext("exec statements", "").
				WithDetails(fmt.Sprintf("statement %d: %s", i+1, statement)).
				Error(err)
		}
		executed++
	}
	return executed, nil
}
