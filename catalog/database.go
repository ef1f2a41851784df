package catalog

import (
	"errors"
	"sync"
)

var (
	// ErrTableExists used by Database
	ErrTableExists = errors.New("table already exists")
)

// Database is the per-database directory of tables.
// It owns its tables; lookup-then-insert is a single critical section.
type Database struct {
	sync.RWMutex
	name   string
	tables map[string]*Table
}

// NewDatabase is ctor for Database
func NewDatabase(name string) *Database {
	return &Database{
		name:   name,
		tables: make(map[string]*Table),
	}
}

// Name of the database
func (db *Database) Name() string {
	return db.name
}

// AddTable registers table, rejecting duplicate names.
func (db *Database) AddTable(table *Table) (err error) {
	db.Lock()
	defer db.Unlock()

	if db.tables[table.Name()] != nil {
		err = ErrTableExists
		return
	}
	db.tables[table.Name()] = table
	return
}

// GetTable returns the table named name, nil when absent.
func (db *Database) GetTable(name string) *Table {
	db.RLock()
	defer db.RUnlock()

	return db.tables[name]
}

// TableCount returns the number of registered tables.
func (db *Database) TableCount() int {
	db.RLock()
	defer db.RUnlock()

	return len(db.tables)
}
