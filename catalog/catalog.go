// Package catalog is the in-memory directory of logical metadata: databases,
// tables, columns, constraints, indexes and schemas, distinct from physical
// storage. Physical objects appear only as opaque handles.
package catalog

import (
	"errors"
	"sync"
)

var (
	// ErrDatabaseExists used by Catalog
	ErrDatabaseExists = errors.New("database already exists")
)

// Catalog is the process-wide directory of databases.
// Construct one per process and hand it to whoever needs it; tests construct
// their own for isolation.
type Catalog struct {
	sync.RWMutex
	databases map[string]*Database
}

// NewCatalog is ctor for Catalog
func NewCatalog() *Catalog {
	return &Catalog{
		databases: make(map[string]*Database),
	}
}

// AddDatabase registers database, rejecting duplicate names.
// The existence check and the insert are one critical section, so two
// concurrent creations of the same name serialize and exactly one wins.
func (c *Catalog) AddDatabase(database *Database) (err error) {
	c.Lock()
	defer c.Unlock()

	if c.databases[database.Name()] != nil {
		err = ErrDatabaseExists
		return
	}
	c.databases[database.Name()] = database
	return
}

// GetDatabase returns the database named name, nil when absent.
func (c *Catalog) GetDatabase(name string) *Database {
	c.RLock()
	defer c.RUnlock()

	return c.databases[name]
}

// DatabaseCount returns the number of registered databases.
func (c *Catalog) DatabaseCount() int {
	c.RLock()
	defer c.RUnlock()

	return len(c.databases)
}
