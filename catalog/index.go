package catalog

// IndexType tags the physical organization of an index.
type IndexType int

const (
	// IndexTypeBTreeMultimap is the only index kind constructed for now
	IndexTypeBTreeMultimap IndexType = iota
)

// PhysicalIndex is the opaque storage-layer object backing an Index.
type PhysicalIndex interface {
	Unique() bool
}

// Index is the logical description of a secondary index.
// Key columns keep their declared order.
type Index struct {
	name     string
	typ      IndexType
	unique   bool
	columns  []*Column
	physical PhysicalIndex
}

// NewIndex is ctor for Index
func NewIndex(name string, typ IndexType, unique bool, columns []*Column) *Index {
	cp := make([]*Column, len(columns))
	copy(cp, columns)
	return &Index{
		name:    name,
		typ:     typ,
		unique:  unique,
		columns: cp,
	}
}

// Name of the index
func (i *Index) Name() string {
	return i.name
}

// Type of the index
func (i *Index) Type() IndexType {
	return i.typ
}

// Unique reports whether the index rejects duplicate keys
func (i *Index) Unique() bool {
	return i.unique
}

// Columns returns the key columns in declared order.
func (i *Index) Columns() []*Column {
	cp := make([]*Column, len(i.columns))
	copy(cp, i.columns)
	return cp
}

// SetPhysicalIndex attaches the storage-layer index, after registration.
func (i *Index) SetPhysicalIndex(physical PhysicalIndex) {
	i.physical = physical
}

// PhysicalIndex returns the attached storage-layer index, nil before attach.
func (i *Index) PhysicalIndex() PhysicalIndex {
	return i.physical
}
