// Package tuple
package tuple

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Value is the scalar stored in every non-key cell.
type Value int64

// Key identifies a row within one table.
type Key = string

type Tuple []Value

type Row struct {
	Key    Key
	Values Tuple
}

const (
	ValueMin Value = math.MinInt32
	ValueMax Value = math.MaxInt32
)

var (
	ErrInvalidValue    = errors.New("tuple: value is not an integer")
	ErrValueOutOfRange = errors.New("tuple: value out of range")
)

func ParseValue(token string) (Value, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrValueOutOfRange, token)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, token)
	}

	value := Value(v)
	if value < ValueMin || value > ValueMax {
		return 0, fmt.Errorf("%w: %q", ErrValueOutOfRange, token)
	}

	return value, nil
}

// ParseTuple parses tokens in order and stops at the first invalid one.
func ParseTuple(tokens []string) (Tuple, error) {
	values := make(Tuple, 0, len(tokens))
	for i, token := range tokens {
		v, err := ParseValue(token)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values = append(values, v)
	}

	return values, nil
}

func FormatValue(v Value) string {
	return strconv.FormatInt(int64(v), 10)
}

func (t Tuple) Equal(other Tuple) bool {
	return slices.Equal(t, other)
}

func (t Tuple) Clone() Tuple {
	if t == nil {
		return nil
	}
	return slices.Clone(t)
}

func (t Tuple) Strings() []string {
	tokens := make([]string, len(t))
	for i, v := range t {
		tokens[i] = FormatValue(v)
	}
	return tokens
}
