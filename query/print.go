package query

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/rizalta/tabledb/catalog"
	"github.com/rizalta/tabledb/db"
)

const printName = "SHOWTABLE"

const ruler = "================\n"

// Print writes a table to the database console in dump format.
type Print struct {
	Table string
}

func (Print) Name() string { return printName }

func (q Print) String() string {
	return fmt.Sprintf("QUERY = SHOWTABLE, Table = %q", q.Table)
}

func (q Print) Execute(d *db.Database) Result {
	logger := begin(d, q, "table", q.Table)

	t, err := d.Table(q.Table)
	if err != nil {
		if errors.Is(err, catalog.ErrTableNotFound) {
			return finish(logger, failedIn(printName, q.Table, "No such table."))
		}
		return finish(logger, failedIn(printName, q.Table, err.Error()))
	}

	var buf bytes.Buffer
	buf.WriteString(ruler)
	buf.WriteString("TABLE = ")
	if err := d.Encoder(&buf).Encode(t); err != nil {
		return finish(logger, failedIn(printName, q.Table, err.Error()))
	}
	buf.WriteString(ruler)
	buf.WriteString("\n")

	if _, err := buf.WriteTo(d.Console()); err != nil {
		return finish(logger, failedIn(printName, q.Table, err.Error()))
	}

	return finish(logger, succeededWith(printName, q.Table))
}

func (Print) query() {}
