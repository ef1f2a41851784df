package catalog

import (
	"errors"
	"sync"
)

var (
	// ErrColumnExists used by Table
	ErrColumnExists = errors.New("column already exists")
	// ErrConstraintExists used by Table
	ErrConstraintExists = errors.New("constraint already exists")
	// ErrIndexExists used by Table
	ErrIndexExists = errors.New("index already exists")
	// ErrPhysicalTableSet used by Table
	ErrPhysicalTableSet = errors.New("physical table already set")
)

// PhysicalTable is the opaque storage-layer object backing a Table.
type PhysicalTable interface {
	Schema() *Schema
}

// Table is the logical description of one table: ordered columns, constraints,
// indexes and exactly one backing physical table.
// Lookup-then-insert on any of its containers is a single critical section.
type Table struct {
	sync.RWMutex
	name        string
	columns     []*Column
	columnIdx   map[string]*Column
	constraints map[string]*Constraint
	indexes     map[string]*Index
	physical    PhysicalTable
}

// NewTable is ctor for Table
func NewTable(name string) *Table {
	return &Table{
		name:        name,
		columnIdx:   make(map[string]*Column),
		constraints: make(map[string]*Constraint),
		indexes:     make(map[string]*Index),
	}
}

// Name of the table
func (t *Table) Name() string {
	return t.name
}

// AddColumn registers column, rejecting duplicate names.
func (t *Table) AddColumn(column *Column) (err error) {
	t.Lock()
	defer t.Unlock()

	if t.columnIdx[column.Name()] != nil {
		err = ErrColumnExists
		return
	}
	t.columnIdx[column.Name()] = column
	t.columns = append(t.columns, column)
	return
}

// GetColumn returns the column named name, nil when absent.
func (t *Table) GetColumn(name string) *Column {
	t.RLock()
	defer t.RUnlock()

	return t.columnIdx[name]
}

// Columns returns all columns in declaration order.
func (t *Table) Columns() []*Column {
	t.RLock()
	defer t.RUnlock()

	cp := make([]*Column, len(t.columns))
	copy(cp, t.columns)
	return cp
}

// AddConstraint registers constraint, rejecting duplicate names.
func (t *Table) AddConstraint(constraint *Constraint) (err error) {
	t.Lock()
	defer t.Unlock()

	if t.constraints[constraint.Name()] != nil {
		err = ErrConstraintExists
		return
	}
	t.constraints[constraint.Name()] = constraint
	return
}

// GetConstraint returns the constraint named name, nil when absent.
func (t *Table) GetConstraint(name string) *Constraint {
	t.RLock()
	defer t.RUnlock()

	return t.constraints[name]
}

// ConstraintCount returns the number of registered constraints.
func (t *Table) ConstraintCount() int {
	t.RLock()
	defer t.RUnlock()

	return len(t.constraints)
}

// AddIndex registers index, rejecting duplicate names.
func (t *Table) AddIndex(index *Index) (err error) {
	t.Lock()
	defer t.Unlock()

	if t.indexes[index.Name()] != nil {
		err = ErrIndexExists
		return
	}
	t.indexes[index.Name()] = index
	return
}

// GetIndex returns the index named name, nil when absent.
func (t *Table) GetIndex(name string) *Index {
	t.RLock()
	defer t.RUnlock()

	return t.indexes[name]
}

// IndexCount returns the number of registered indexes.
func (t *Table) IndexCount() int {
	t.RLock()
	defer t.RUnlock()

	return len(t.indexes)
}

// SetPhysicalTable attaches the backing physical table, exactly once.
func (t *Table) SetPhysicalTable(physical PhysicalTable) (err error) {
	t.Lock()
	defer t.Unlock()

	if t.physical != nil {
		err = ErrPhysicalTableSet
		return
	}
	t.physical = physical
	return
}

// PhysicalTable returns the backing physical table.
func (t *Table) PhysicalTable() PhysicalTable {
	t.RLock()
	defer t.RUnlock()

	return t.physical
}
