package index

import (
	"os"
	"testing"

	"github.com/linpingchuan/peloton"
	"github.com/linpingchuan/peloton/catalog"
	"github.com/linpingchuan/peloton/kv/memcomparable"
	"github.com/linpingchuan/peloton/provider"
	"github.com/linpingchuan/peloton/types"
	"gotest.tools/assert"
)

const dataDir = "/tmp/peloton-index"

func newTestKVDB(t *testing.T) peloton.KVDB {
	os.RemoveAll(dataDir)

	kvdb := provider.NewBadger()
	err := kvdb.Open(peloton.KVOption{Dir: dataDir})
	assert.Assert(t, err == nil)
	return kvdb
}

func testSchemas() (tupleSchema, keySchema *catalog.Schema) {
	tupleSchema = catalog.NewSchema([]catalog.ColumnInfo{
		{Type: types.BigInt, Size: 8, Name: "id"},
		{Type: types.Varchar, Size: 32, Name: "name", Varlen: true},
	})
	keySchema, _ = tupleSchema.Project([]int{0})
	return
}

func TestIndexUnique(t *testing.T) {
	kvdb := newTestKVDB(t)
	defer kvdb.Close()

	tupleSchema, keySchema := testSchemas()
	idx, err := NewIndex(kvdb, "default/users", Metadata{
		Name:        "pk",
		Type:        catalog.IndexTypeBTreeMultimap,
		TupleSchema: tupleSchema,
		KeySchema:   keySchema,
		Unique:      true,
	})
	assert.Assert(t, err == nil)
	assert.Assert(t, idx.Unique())

	err = idx.Insert([]interface{}{int64(1)}, 100)
	assert.Assert(t, err == nil)

	err = idx.Insert([]interface{}{int64(1)}, 101)
	assert.Assert(t, err == ErrDuplicateKey)

	rowIDs, err := idx.Seek([]interface{}{int64(1)})
	assert.Assert(t, err == nil)
	assert.Assert(t, len(rowIDs) == 1 && rowIDs[0] == 100)

	rowIDs, err = idx.Seek([]interface{}{int64(2)})
	assert.Assert(t, err == nil && len(rowIDs) == 0)
}

func TestIndexMultimap(t *testing.T) {
	kvdb := newTestKVDB(t)
	defer kvdb.Close()

	tupleSchema, keySchema := testSchemas()
	idx, err := NewIndex(kvdb, "default/users", Metadata{
		Name:        "by_id",
		Type:        catalog.IndexTypeBTreeMultimap,
		TupleSchema: tupleSchema,
		KeySchema:   keySchema,
	})
	assert.Assert(t, err == nil)

	err = idx.Insert([]interface{}{int64(1)}, 100)
	assert.Assert(t, err == nil)
	err = idx.Insert([]interface{}{int64(1)}, 101)
	assert.Assert(t, err == nil)
	err = idx.Insert([]interface{}{int64(2)}, 102)
	assert.Assert(t, err == nil)

	rowIDs, err := idx.Seek([]interface{}{int64(1)})
	assert.Assert(t, err == nil)
	assert.Assert(t, len(rowIDs) == 2 && rowIDs[0] == 100 && rowIDs[1] == 101)
}

func TestIndexKeyOrder(t *testing.T) {
	kvdb := newTestKVDB(t)
	defer kvdb.Close()

	tupleSchema, keySchema := testSchemas()
	idx, err := NewIndex(kvdb, "default/users", Metadata{
		Name:        "by_id",
		Type:        catalog.IndexTypeBTreeMultimap,
		TupleSchema: tupleSchema,
		KeySchema:   keySchema,
	})
	assert.Assert(t, err == nil)

	// inserted out of order, iterated in key order
	for _, v := range []int64{3, -1, 2} {
		err = idx.Insert([]interface{}{v}, v+10)
		assert.Assert(t, err == nil)
	}

	var got []int64
	err = kvdb.Scan(peloton.ScanOption{Prefix: idx.prefix()}, func(key, value []byte) bool {
		_, rowID, derr := memcomparable.DecodeInt64(value)
		assert.Assert(t, derr == nil)
		got = append(got, rowID)
		return true
	})
	assert.Assert(t, err == nil)
	assert.Assert(t, len(got) == 3)
	assert.Assert(t, got[0] == 9 && got[1] == 12 && got[2] == 13)
}

func TestIndexValidation(t *testing.T) {
	kvdb := newTestKVDB(t)
	defer kvdb.Close()

	tupleSchema, keySchema := testSchemas()

	_, err := NewIndex(kvdb, "default/users", Metadata{Name: "bad", TupleSchema: tupleSchema})
	assert.Assert(t, err == ErrEmptyKeySchema)

	idx, err := NewIndex(kvdb, "default/users", Metadata{
		Name:        "by_id",
		TupleSchema: tupleSchema,
		KeySchema:   keySchema,
	})
	assert.Assert(t, err == nil)

	err = idx.Insert([]interface{}{int64(1), int64(2)}, 100)
	assert.Assert(t, err == ErrKeyArity)

	err = idx.Insert([]interface{}{"not an int"}, 100)
	assert.Assert(t, err == ErrTypeMismatch)
}
