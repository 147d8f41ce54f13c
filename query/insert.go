package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rizalta/tabledb/catalog"
	"github.com/rizalta/tabledb/db"
	"github.com/rizalta/tabledb/tuple"
)

const insertName = "INSERT"

// Insert adds one row. Operands are the key followed by one value per field.
type Insert struct {
	Table    string
	Operands []string
}

func NewInsert(tableName string, operands ...string) Insert {
	return Insert{Table: tableName, Operands: slices.Clone(operands)}
}

func (Insert) Name() string { return insertName }

func (q Insert) String() string {
	return fmt.Sprintf("QUERY = INSERT %q, OPERANDS = ( %s )", q.Table, strings.Join(q.Operands, " "))
}

func (q Insert) Execute(d *db.Database) Result {
	logger := begin(d, q, "table", q.Table)

	if len(q.Operands) == 0 {
		return finish(logger, failedIn(insertName, q.Table,
			fmt.Sprintf("No operand (%d operands).", len(q.Operands))))
	}

	t, err := d.Table(q.Table)
	if err != nil {
		if errors.Is(err, catalog.ErrTableNotFound) {
			return finish(logger, failedIn(insertName, q.Table, "No such table."))
		}
		return finish(logger, failedIn(insertName, q.Table, err.Error()))
	}

	values, err := tuple.ParseTuple(q.Operands[1:])
	if err != nil {
		return finish(logger, failedIn(insertName, q.Table, err.Error()))
	}

	if err := t.Insert(q.Operands[0], values); err != nil {
		return finish(logger, failedIn(insertName, q.Table, err.Error()))
	}

	return finish(logger, Empty{})
}

func (Insert) query() {}
