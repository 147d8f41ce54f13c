// Package codec reads and writes tables in the line-oriented text format:
//
//	<name> <fieldCount>
//	KEY <field1> ... <fieldN>
//	<key> <v1> ... <vN>
//
// fieldCount includes the KEY column. Tokens are separated by whitespace and the
// row block ends at end of input or at the first empty line.
package codec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rizalta/tabledb/table"
)

// DefaultWidth is the column width used by dump and print.
const DefaultWidth = 10

type Encoder struct {
	w     io.Writer
	width int
}

// NewEncoder returns an Encoder that right-aligns columns to width characters.
// A width of zero or less writes single-space separated tokens.
func NewEncoder(w io.Writer, width int) *Encoder {
	return &Encoder{w: w, width: width}
}

// Encode writes t in canonical form without padding.
func Encode(w io.Writer, t *table.Table) error {
	return NewEncoder(w, 0).Encode(t)
}

func (e *Encoder) Encode(t *table.Table) error {
	bw := bufio.NewWriter(e.w)

	bw.WriteString(t.Name())
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(t.FieldCount() + 1))
	bw.WriteByte('\n')

	header := make([]string, 0, t.FieldCount()+1)
	header = append(header, table.KeyField)
	header = append(header, t.Fields()...)
	e.writeLine(bw, header)

	line := make([]string, 0, t.FieldCount()+1)
	scanner := t.Scan()
	for row, ok := scanner.Next(); ok; row, ok = scanner.Next() {
		line = append(append(line[:0], row.Key), row.Values.Strings()...)
		e.writeLine(bw, line)
	}

	return bw.Flush()
}

func (e *Encoder) writeLine(bw *bufio.Writer, tokens []string) {
	for i, token := range tokens {
		pad := e.width - len(token)
		if i > 0 && pad < 1 {
			pad = 1
		}
		if pad > 0 {
			bw.WriteString(strings.Repeat(" ", pad))
		}
		bw.WriteString(token)
	}
	bw.WriteByte('\n')
}
