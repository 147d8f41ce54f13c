// Package catalog
package catalog

import "github.com/google/uuid"

// TableInfo is a summary line of the database overview.
type TableInfo struct {
	ID     uuid.UUID
	Name   string
	Fields int // includes KEY
	Rows   int
}
