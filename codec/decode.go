package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rizalta/tabledb/table"
	"github.com/rizalta/tabledb/tuple"
)

// DefaultMaxLineSize bounds a single line of input.
const DefaultMaxLineSize = 1 << 20

// Registry receives decoded tables. The name is checked before any row is read
// and the table is registered only after the whole block parsed.
type Registry interface {
	CheckAvailable(name string) error
	Register(t *table.Table) (*table.Table, error)
}

type Decoder struct {
	scanner *bufio.Scanner
	source  string
	line    int
}

// NewDecoder reads one table block from r. source labels errors and may be empty.
func NewDecoder(r io.Reader, source string, maxLineSize int) *Decoder {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(maxLineSize, 64*1024)), maxLineSize)

	return &Decoder{scanner: scanner, source: source}
}

func Decode(r io.Reader, source string) (*table.Table, error) {
	return NewDecoder(r, source, 0).Decode()
}

func Load(r io.Reader, source string, reg Registry) (*table.Table, error) {
	return NewDecoder(r, source, 0).Load(reg)
}

// Decode parses a table without registering it anywhere.
func (d *Decoder) Decode() (*table.Table, error) {
	return d.decode(nil)
}

// Load parses a table and registers it with reg.
func (d *Decoder) Load(reg Registry) (*table.Table, error) {
	if reg == nil {
		return nil, errors.New("codec: nil registry")
	}
	return d.decode(reg)
}

func (d *Decoder) decode(reg Registry) (*table.Table, error) {
	line, ok, err := d.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, d.malformed("failed to read table metadata line", nil)
	}

	name, fieldCount, err := parseMetadata(line)
	if err != nil {
		return nil, d.malformed("failed to parse table metadata", err)
	}

	if reg != nil {
		if err := reg.CheckAvailable(name); err != nil {
			return nil, err
		}
	}

	line, ok, err = d.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, d.malformed("failed to load field names", nil)
	}

	header := strings.Fields(line)
	if len(header) < fieldCount {
		return nil, d.malformed("failed to load field names",
			fmt.Errorf("expected %d, got %d", fieldCount, len(header)))
	}
	if len(header) > fieldCount {
		return nil, d.malformed("too many field names",
			fmt.Errorf("expected %d, got %d", fieldCount, len(header)))
	}
	if header[0] != table.KeyField {
		return nil, d.malformed("missing or invalid KEY field", nil)
	}

	t, err := table.New(name, header[1:])
	if err != nil {
		return nil, err
	}

	for {
		line, ok, err := d.next()
		if err != nil {
			return nil, err
		}
		if !ok || line == "" {
			break
		}

		if err := d.insertRow(t, line); err != nil {
			return nil, err
		}
	}

	if reg != nil {
		return reg.Register(t)
	}

	return t, nil
}

func (d *Decoder) insertRow(t *table.Table, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return d.malformed("missing or invalid KEY field", nil)
	}

	reason := "invalid row on line " + strconv.Itoa(d.line)
	if got := len(tokens) - 1; got != t.FieldCount() {
		return d.malformed(reason, fmt.Errorf("expected %d values, got %d", t.FieldCount(), got))
	}

	values, err := tuple.ParseTuple(tokens[1:])
	if err != nil {
		return d.malformed(reason, err)
	}

	if err := t.Insert(tokens[0], values); err != nil {
		return d.malformed(reason, err)
	}

	return nil
}

func parseMetadata(line string) (string, int, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return "", 0, fmt.Errorf("expected name and field count, got %d tokens", len(tokens))
	}

	fieldCount, err := strconv.Atoi(tokens[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid field count %q", tokens[1])
	}
	if fieldCount < 1 {
		return "", 0, fmt.Errorf("field count %d does not include KEY", fieldCount)
	}

	return tokens[0], fieldCount, nil
}

// next returns the next line with any trailing carriage return removed.
func (d *Decoder) next() (string, bool, error) {
	if d.scanner.Scan() {
		d.line++
		return strings.TrimSuffix(d.scanner.Text(), "\r"), true, nil
	}

	err := d.scanner.Err()
	if err == nil {
		return "", false, nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		d.line++
		return "", false, d.malformed("line "+strconv.Itoa(d.line)+" too long", err)
	}

	return "", false, fmt.Errorf("codec: failed to read input: %w", err)
}

func (d *Decoder) malformed(reason string, err error) error {
	return &MalformedInputError{
		Source: d.source,
		Line:   d.line,
		Reason: reason,
		Err:    err,
	}
}
