package query

import (
	"bytes"
	"fmt"

	"github.com/rizalta/tabledb/db"
)

const listName = "LIST"

const overviewRuler = "=========================\n"

// List writes an overview of every table to the database console.
type List struct{}

func (List) Name() string { return listName }

func (List) String() string { return "QUERY = LIST" }

func (q List) Execute(d *db.Database) Result {
	logger := begin(d, q)

	infos := d.Catalog().Overview()

	var buf bytes.Buffer
	buf.WriteString("Database overview:\n")
	buf.WriteString(overviewRuler)
	fmt.Fprintf(&buf, "%15s%15s%15s\n", "Table name", "# of fields", "# of entries")
	for _, info := range infos {
		fmt.Fprintf(&buf, "%15s%15d%15d\n", info.Name, info.Fields, info.Rows)
		logger.Debug("table", "table", info.Name, "table_id", info.ID)
	}
	fmt.Fprintf(&buf, "Total %d tables.\n", len(infos))
	buf.WriteString(overviewRuler)

	if _, err := buf.WriteTo(d.Console()); err != nil {
		return finish(logger, failed(listName, err.Error()))
	}

	return finish(logger, succeeded(listName))
}

func (List) query() {}
