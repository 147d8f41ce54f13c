package query

import (
	"errors"
	"fmt"

	"github.com/rizalta/tabledb/catalog"
	"github.com/rizalta/tabledb/db"
)

const dropName = "DROP"

// Drop removes a table from the catalog. The result counts the rows that went
// with it.
type Drop struct {
	Table string
}

func (Drop) Name() string { return dropName }

func (q Drop) String() string {
	return fmt.Sprintf("QUERY = DROP, Table = %q", q.Table)
}

func (q Drop) Execute(d *db.Database) Result {
	logger := begin(d, q, "table", q.Table)

	t, err := d.Table(q.Table)
	if err == nil {
		err = d.Catalog().Drop(q.Table)
	}
	if err != nil {
		if errors.Is(err, catalog.ErrTableNotFound) {
			return finish(logger, failedIn(dropName, q.Table, "No such table."))
		}
		return finish(logger, failedIn(dropName, q.Table, err.Error()))
	}

	return finish(logger, RowCount{N: t.Len()})
}

func (Drop) query() {}
