package query

import (
	"errors"
	"fmt"
	"os"

	"github.com/rizalta/tabledb/catalog"
	"github.com/rizalta/tabledb/db"
)

const dumpName = "DUMP"

// Dump writes a table to a file, replacing its content.
type Dump struct {
	Table string
	Path  string
}

func (Dump) Name() string { return dumpName }

func (q Dump) String() string {
	return fmt.Sprintf("QUERY = Dump TABLE, FILE = %q", q.Path)
}

func (q Dump) Execute(d *db.Database) Result {
	logger := begin(d, q, "table", q.Table, "file", q.Path)

	// Looked up first so a missing table does not leave an empty file behind.
	t, err := d.Table(q.Table)
	if err != nil {
		if errors.Is(err, catalog.ErrTableNotFound) {
			return finish(logger, failedIn(dumpName, q.Table, "No such table."))
		}
		return finish(logger, failed(dumpName, err.Error()))
	}

	f, err := os.Create(q.Path)
	if err != nil {
		logger.Debug("create failed", "error", err)
		return finish(logger, failed(dumpName, fmt.Sprintf("Cannot open file '%s'", q.Path)))
	}

	if err := d.Encoder(f).Encode(t); err != nil {
		f.Close()
		return finish(logger, failed(dumpName, err.Error()))
	}
	if err := f.Close(); err != nil {
		return finish(logger, failed(dumpName, err.Error()))
	}
	d.Catalog().SetFileTableName(q.Path, t.Name())

	return finish(logger, succeeded(dumpName))
}

func (Dump) query() {}
