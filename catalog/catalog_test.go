package catalog

import (
	"sync"
	"testing"

	"github.com/linpingchuan/peloton/types"
	"gotest.tools/assert"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()

	err := c.AddDatabase(NewDatabase("db1"))
	assert.Assert(t, err == nil)

	err = c.AddDatabase(NewDatabase("db1"))
	assert.Assert(t, err == ErrDatabaseExists)

	assert.Assert(t, c.GetDatabase("db1") != nil)
	assert.Assert(t, c.GetDatabase("nope") == nil)
	assert.Assert(t, c.DatabaseCount() == 1)
}

func TestCatalogConcurrentAdd(t *testing.T) {
	c := NewCatalog()

	const n = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.AddDatabase(NewDatabase("racedb")) == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Assert(t, count == 1)
	assert.Assert(t, c.DatabaseCount() == 1)
}

func TestDatabase(t *testing.T) {
	db := NewDatabase("db1")

	err := db.AddTable(NewTable("t1"))
	assert.Assert(t, err == nil)

	err = db.AddTable(NewTable("t1"))
	assert.Assert(t, err == ErrTableExists)

	assert.Assert(t, db.GetTable("t1") != nil)
	assert.Assert(t, db.TableCount() == 1)
}

func TestTable(t *testing.T) {
	table := NewTable("t1")

	err := table.AddColumn(NewColumn("a", types.Integer, 0, 4, true))
	assert.Assert(t, err == nil)
	err = table.AddColumn(NewColumn("a", types.Integer, 1, 4, true))
	assert.Assert(t, err == ErrColumnExists)

	a := table.GetColumn("a")
	assert.Assert(t, a != nil && a.Offset() == 0 && a.Size() == 4 && a.NotNull())

	keyIndex := NewIndex("INDEX_0", IndexTypeBTreeMultimap, true, []*Column{a})
	err = table.AddIndex(keyIndex)
	assert.Assert(t, err == nil)
	err = table.AddIndex(NewIndex("INDEX_0", IndexTypeBTreeMultimap, false, []*Column{a}))
	assert.Assert(t, err == ErrIndexExists)

	constraint := NewPrimaryConstraint("PK_0", keyIndex, []*Column{a})
	err = table.AddConstraint(constraint)
	assert.Assert(t, err == nil)
	err = table.AddConstraint(NewPrimaryConstraint("PK_0", keyIndex, []*Column{a}))
	assert.Assert(t, err == ErrConstraintExists)

	assert.Assert(t, table.GetConstraint("PK_0").Index() == keyIndex)
	assert.Assert(t, table.GetIndex("INDEX_0").Unique())
}

func TestSchemaProject(t *testing.T) {
	schema := NewSchema([]ColumnInfo{
		{Type: types.Integer, Size: 4, Name: "a"},
		{Type: types.Varchar, Size: 16, Name: "b", Varlen: true},
		{Type: types.BigInt, Size: 8, Name: "c"},
	})

	// projection preserves the requested order, unsorted and undeduplicated
	projected, err := schema.Project([]int{2, 0, 2})
	assert.Assert(t, err == nil)
	assert.Assert(t, projected.ColumnCount() == 3)
	assert.Assert(t, projected.Column(0).Name == "c")
	assert.Assert(t, projected.Column(1).Name == "a")
	assert.Assert(t, projected.Column(2).Name == "c")

	_, err = schema.Project([]int{3})
	assert.Assert(t, err == ErrBadProjection)
}
