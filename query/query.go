// Package query implements the commands run against a database. Every
// command returns a Result; errors from the catalog, the tables, the codec or
// the file system never escape Execute.
package query

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rizalta/tabledb/db"
)

type Query interface {
	Name() string
	String() string
	Execute(d *db.Database) Result
	query()
}

// Run executes queries in order and reports whether all of them succeeded.
func Run(d *db.Database, queries ...Query) ([]Result, bool) {
	results := make([]Result, 0, len(queries))
	ok := true
	for _, q := range queries {
		r := q.Execute(d)
		results = append(results, r)
		ok = ok && r.OK()
	}
	return results, ok
}

func begin(d *db.Database, q Query, args ...any) *slog.Logger {
	logger := d.Logger().With(append([]any{"query_id", uuid.NewString(), "query", q.Name()}, args...)...)
	logger.Debug("query started")
	return logger
}

func finish(logger *slog.Logger, r Result) Result {
	if r.OK() {
		logger.Debug("query finished", "result", Kind(r))
	} else {
		logger.Warn("query failed", "error", r.String())
	}
	return r
}
