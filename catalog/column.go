package catalog

import "github.com/linpingchuan/peloton/types"

// Column is the logical description of one table column.
// Offset is assigned in declaration order and never changes.
type Column struct {
	name    string
	typ     types.ValueType
	offset  int
	size    int
	notNull bool
}

// NewColumn is ctor for Column
func NewColumn(name string, typ types.ValueType, offset, size int, notNull bool) *Column {
	return &Column{
		name:    name,
		typ:     typ,
		offset:  offset,
		size:    size,
		notNull: notNull,
	}
}

// Name of the column
func (c *Column) Name() string {
	return c.name
}

// Type of the column values
func (c *Column) Type() types.ValueType {
	return c.typ
}

// Offset of the column within its table's row layout
func (c *Column) Offset() int {
	return c.offset
}

// Size is the physical byte width, or the declared length for variable-length types
func (c *Column) Size() int {
	return c.size
}

// NotNull reports whether NULL values are rejected
func (c *Column) NotNull() bool {
	return c.notNull
}
