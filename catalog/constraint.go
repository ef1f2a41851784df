package catalog

// ConstraintType discriminates constraint kinds.
type ConstraintType int

const (
	// ConstraintTypePrimary for primary key constraints
	ConstraintTypePrimary ConstraintType = iota
	// ConstraintTypeForeign for foreign key constraints
	ConstraintTypeForeign
)

// Constraint is either a primary key (owning its index) or a foreign key
// (referencing resolved sink columns of another table in the same database).
// A Constraint is only ever constructed fully wired.
type Constraint struct {
	name        string
	typ         ConstraintType
	index       *Index
	sinkTable   *Table
	columns     []*Column
	sinkColumns []*Column
}

// NewPrimaryConstraint is ctor for a primary key Constraint owning index.
func NewPrimaryConstraint(name string, index *Index, columns []*Column) *Constraint {
	cp := make([]*Column, len(columns))
	copy(cp, columns)
	return &Constraint{
		name:    name,
		typ:     ConstraintTypePrimary,
		index:   index,
		columns: cp,
	}
}

// NewForeignConstraint is ctor for a foreign key Constraint from source columns
// of the owning table to sink columns of sinkTable.
func NewForeignConstraint(name string, sinkTable *Table, source, sink []*Column) *Constraint {
	scp := make([]*Column, len(source))
	copy(scp, source)
	kcp := make([]*Column, len(sink))
	copy(kcp, sink)
	return &Constraint{
		name:        name,
		typ:         ConstraintTypeForeign,
		sinkTable:   sinkTable,
		columns:     scp,
		sinkColumns: kcp,
	}
}

// Name of the constraint
func (c *Constraint) Name() string {
	return c.name
}

// Type of the constraint
func (c *Constraint) Type() ConstraintType {
	return c.typ
}

// Index returns the owned index, nil for foreign constraints.
func (c *Constraint) Index() *Index {
	return c.index
}

// SinkTable returns the referenced table, nil for primary constraints.
func (c *Constraint) SinkTable() *Table {
	return c.sinkTable
}

// Columns returns the constrained columns of the owning table.
func (c *Constraint) Columns() []*Column {
	cp := make([]*Column, len(c.columns))
	copy(cp, c.columns)
	return cp
}

// SinkColumns returns the referenced columns of the sink table.
func (c *Constraint) SinkColumns() []*Column {
	cp := make([]*Column, len(c.sinkColumns))
	copy(cp, c.sinkColumns)
	return cp
}
