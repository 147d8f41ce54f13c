// Package table
package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/rizalta/tabledb/tuple"
)

// KeyField is the reserved name of the identifier column.
const KeyField = "KEY"

var (
	ErrReservedField      = errors.New("table: multiple KEY field")
	ErrDuplicateField     = errors.New("table: duplicate field name")
	ErrFieldNotFound      = errors.New("table: field not found")
	ErrDuplicateKey       = errors.New("table: key already exists")
	ErrInvalidKey         = errors.New("table: key must be a single non-empty token")
	ErrFieldCountMismatch = errors.New("table: number of values mismatch with field count")
)

// Table keeps rows in insertion order. keys maps every key to its position in rows.
type Table struct {
	name     string
	fields   []string
	fieldMap map[string]int
	rows     []tuple.Row
	keys     map[tuple.Key]int
}

func New(name string, fields []string) (*Table, error) {
	fieldMap := make(map[string]int, len(fields))
	for i, field := range fields {
		if field == KeyField {
			return nil, fmt.Errorf("error creating table %q: %w", name, ErrReservedField)
		}
		if _, exists := fieldMap[field]; exists {
			return nil, fmt.Errorf("error creating table %q: %w: %q", name, ErrDuplicateField, field)
		}
		fieldMap[field] = i
	}

	return &Table{
		name:     name,
		fields:   slices.Clone(fields),
		fieldMap: fieldMap,
		keys:     make(map[tuple.Key]int),
	}, nil
}

func (t *Table) Name() string {
	return t.name
}

// Fields returns the declared fields, without KEY.
func (t *Table) Fields() []string {
	return slices.Clone(t.fields)
}

func (t *Table) FieldCount() int {
	return len(t.fields)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) FieldIndex(name string) (int, error) {
	i, ok := t.fieldMap[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return i, nil
}

func (t *Table) HasField(name string) bool {
	_, ok := t.fieldMap[name]
	return ok
}

// Insert appends a row. On error the table is left untouched.
func (t *Table) Insert(key tuple.Key, values tuple.Tuple) error {
	if key == "" || strings.ContainsFunc(key, unicode.IsSpace) {
		return fmt.Errorf("in table %q: %w: %q", t.name, ErrInvalidKey, key)
	}

	if len(values) != len(t.fields) {
		return fmt.Errorf("in table %q: %w: expected %d, got %d",
			t.name, ErrFieldCountMismatch, len(t.fields), len(values))
	}

	if _, exists := t.keys[key]; exists {
		return fmt.Errorf("in table %q: %w: %q", t.name, ErrDuplicateKey, key)
	}

	t.rows = append(t.rows, tuple.Row{Key: key, Values: values.Clone()})
	t.keys[key] = len(t.rows) - 1

	return nil
}

func (t *Table) Lookup(key tuple.Key) (tuple.Row, bool) {
	pos, ok := t.keys[key]
	if !ok {
		return tuple.Row{}, false
	}

	row := t.rows[pos]
	return tuple.Row{Key: row.Key, Values: row.Values.Clone()}, true
}
