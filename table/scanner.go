package table

import "github.com/rizalta/tabledb/tuple"

type Scanner struct {
	table *Table
	pos   int
}

func (t *Table) Scan() *Scanner {
	return &Scanner{table: t}
}

// Next returns the next row, or false once every row present at the time of
// the call has been returned.
func (s *Scanner) Next() (tuple.Row, bool) {
	if s.pos >= len(s.table.rows) {
		return tuple.Row{}, false
	}

	row := s.table.rows[s.pos]
	s.pos++

	return tuple.Row{Key: row.Key, Values: row.Values.Clone()}, true
}
