// Package storage provides the physical table factory. A Table stores rows in
// a kv provider under its own key namespace, bson-encoded, with a small
// admission-controlled row cache in front of reads.
package storage

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/linpingchuan/peloton"
	"github.com/linpingchuan/peloton/catalog"
	"github.com/linpingchuan/peloton/kv"
	"github.com/linpingchuan/peloton/kv/memcomparable"
	"github.com/linpingchuan/peloton/util"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	rowCacheCounters = 1e4
	rowCacheMaxCost  = 1 << 24
)

// Row is one stored tuple, keyed by column name.
type Row map[string]interface{}

// Table is the physical storage object backing a catalog table.
type Table struct {
	kvdb      peloton.KVDB
	namespace string
	schema    *catalog.Schema
	cache     *ristretto.Cache[string, []byte]
}

// NewTable is ctor for Table; it is the factory the DDL path calls to
// produce the physical table bound to schema.
func NewTable(kvdb peloton.KVDB, namespace string, schema *catalog.Schema) (t *Table, err error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: rowCacheCounters,
		MaxCost:     rowCacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return
	}

	t = &Table{
		kvdb:      kvdb,
		namespace: namespace,
		schema:    schema,
		cache:     cache,
	}
	return
}

// Schema returns the schema the table was constructed from.
func (t *Table) Schema() *catalog.Schema {
	return t.schema
}

func (t *Table) seqKey() []byte {
	return []byte("t/" + t.namespace + "/seq")
}

func (t *Table) rowKey(rowID int64) []byte {
	return memcomparable.EncodeInt64([]byte("t/"+t.namespace+"/r/"), rowID)
}

// Insert stores row and returns the row id it was assigned.
func (t *Table) Insert(row Row) (rowID int64, err error) {
	v, err := bson.Marshal(row)
	if err != nil {
		return
	}

	err = util.RunInNewUpdateTxn(t.kvdb, func(txn peloton.ProviderTxn) (err error) {
		rowID, err = kv.IncInt64(txn, t.seqKey(), 1)
		if err != nil {
			return
		}
		err = txn.Set(t.rowKey(rowID), v)
		return
	})
	if err != nil {
		return
	}

	// Wait so a later Delete cannot race the buffered Set
	t.cache.Set(string(t.rowKey(rowID)), v, int64(len(v)))
	t.cache.Wait()
	return
}

// Get returns the row stored under rowID.
func (t *Table) Get(rowID int64) (row Row, err error) {
	key := t.rowKey(rowID)
	v, ok := t.cache.Get(string(key))
	if !ok {
		v, err = t.kvdb.Get(key)
		if err != nil {
			return
		}
		t.cache.Set(string(key), v, int64(len(v)))
		t.cache.Wait()
	}

	err = bson.Unmarshal(v, &row)
	return
}

// Delete removes the row stored under rowID.
func (t *Table) Delete(rowID int64) (err error) {
	key := t.rowKey(rowID)
	err = t.kvdb.Delete(key)
	if err != nil {
		return
	}
	t.cache.Del(string(key))
	return
}

// Close releases the row cache.
func (t *Table) Close() {
	t.cache.Close()
}
