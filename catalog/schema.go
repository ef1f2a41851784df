package catalog

import (
	"errors"

	"github.com/linpingchuan/peloton/types"
)

var (
	// ErrBadProjection used by Schema
	ErrBadProjection = errors.New("projection offset out of range")
)

// ColumnInfo describes the physical layout of one column.
type ColumnInfo struct {
	Type     types.ValueType
	Size     int
	Name     string
	Nullable bool
	Varlen   bool
}

// Schema is an immutable ordered list of physical column descriptors.
// It lays out rows for a physical table and, projected, keys for an index.
type Schema struct {
	columns []ColumnInfo
}

// NewSchema is ctor for Schema
func NewSchema(columns []ColumnInfo) *Schema {
	cp := make([]ColumnInfo, len(columns))
	copy(cp, columns)
	return &Schema{columns: cp}
}

// ColumnCount returns the number of columns.
func (s *Schema) ColumnCount() int {
	return len(s.columns)
}

// Column returns the descriptor at offset.
func (s *Schema) Column(offset int) ColumnInfo {
	return s.columns[offset]
}

// Columns returns all descriptors in layout order.
func (s *Schema) Columns() []ColumnInfo {
	cp := make([]ColumnInfo, len(s.columns))
	copy(cp, s.columns)
	return cp
}

// Project returns a new schema holding the columns at the given offsets,
// in the given order, duplicates included.
func (s *Schema) Project(offsets []int) (projected *Schema, err error) {
	columns := make([]ColumnInfo, 0, len(offsets))
	for _, offset := range offsets {
		if offset < 0 || offset >= len(s.columns) {
			err = ErrBadProjection
			return
		}
		columns = append(columns, s.columns[offset])
	}
	projected = &Schema{columns: columns}
	return
}
