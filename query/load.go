package query

import (
	"fmt"
	"os"

	"github.com/rizalta/tabledb/db"
)

const loadName = "LOAD"

// Load reads a table from a file and registers it.
type Load struct {
	Path string
}

func (Load) Name() string { return loadName }

func (q Load) String() string {
	return fmt.Sprintf("QUERY = Load TABLE, FILE = %q", q.Path)
}

func (q Load) Execute(d *db.Database) Result {
	logger := begin(d, q, "file", q.Path)

	f, err := os.Open(q.Path)
	if err != nil {
		logger.Debug("open failed", "error", err)
		return finish(logger, failed(loadName, fmt.Sprintf("Cannot open file '%s'", q.Path)))
	}
	defer f.Close()

	t, err := d.Decoder(f, q.Path).Load(d.Catalog())
	if err != nil {
		return finish(logger, failed(loadName, err.Error()))
	}
	d.Catalog().SetFileTableName(q.Path, t.Name())

	logger.Info("table loaded", "table", t.Name(), "rows", t.Len(), "fields", t.FieldCount())

	return finish(logger, succeeded(loadName))
}

func (Load) query() {}
