// Package index provides the physical index factory. An Index keeps its
// entries memcomparable-encoded in a kv provider, so the provider's ordered
// iteration doubles as btree-style key order.
package index

import (
	"errors"

	"github.com/linpingchuan/peloton"
	"github.com/linpingchuan/peloton/catalog"
	"github.com/linpingchuan/peloton/kv"
	"github.com/linpingchuan/peloton/kv/memcomparable"
	"github.com/linpingchuan/peloton/types"
	"github.com/linpingchuan/peloton/util"
)

var (
	// ErrEmptyKeySchema used by Index
	ErrEmptyKeySchema = errors.New("key schema empty")
	// ErrKeyArity used by Index
	ErrKeyArity = errors.New("key value count does not match key schema")
	// ErrTypeMismatch used by Index
	ErrTypeMismatch = errors.New("key value type does not match key schema")
	// ErrDuplicateKey used by Index
	ErrDuplicateKey = errors.New("duplicate key in unique index")
)

// Metadata describes a physical index: identity, the tuple schema of its
// table and the key schema projected from it.
type Metadata struct {
	Name        string
	Type        catalog.IndexType
	TupleSchema *catalog.Schema
	KeySchema   *catalog.Schema
	Unique      bool
}

// Index is the physical storage object backing a catalog index.
type Index struct {
	kvdb      peloton.KVDB
	namespace string
	md        Metadata
}

// NewIndex is ctor for Index; it is the factory the DDL path calls to
// produce the physical index described by md.
func NewIndex(kvdb peloton.KVDB, namespace string, md Metadata) (idx *Index, err error) {
	if md.KeySchema == nil || md.KeySchema.ColumnCount() == 0 {
		err = ErrEmptyKeySchema
		return
	}

	idx = &Index{
		kvdb:      kvdb,
		namespace: namespace,
		md:        md,
	}
	return
}

// Metadata returns the metadata the index was constructed from.
func (idx *Index) Metadata() Metadata {
	return idx.md
}

// Unique reports whether the index rejects duplicate keys.
func (idx *Index) Unique() bool {
	return idx.md.Unique
}

func (idx *Index) prefix() []byte {
	return []byte("i/" + idx.namespace + "/" + idx.md.Name + "/")
}

// encodeKey appends the memcomparable form of values, one per key schema
// column in key order.
func (idx *Index) encodeKey(values []interface{}) (k []byte, err error) {
	if len(values) != idx.md.KeySchema.ColumnCount() {
		err = ErrKeyArity
		return
	}

	k = idx.prefix()
	for i, ci := range idx.md.KeySchema.Columns() {
		switch ci.Type {
		case types.Boolean:
			v, ok := values[i].(bool)
			if !ok {
				err = ErrTypeMismatch
				return
			}
			var b byte
			if v {
				b = 1
			}
			k = append(k, b)
		case types.TinyInt, types.SmallInt, types.Integer, types.BigInt, types.Timestamp:
			var v int64
			switch n := values[i].(type) {
			case int:
				v = int64(n)
			case int32:
				v = int64(n)
			case int64:
				v = n
			default:
				err = ErrTypeMismatch
				return
			}
			k = memcomparable.EncodeInt64(k, v)
		case types.Double:
			v, ok := values[i].(float64)
			if !ok {
				err = ErrTypeMismatch
				return
			}
			k = memcomparable.EncodeFloat64(k, v)
		case types.Char, types.Varchar:
			v, ok := values[i].(string)
			if !ok {
				err = ErrTypeMismatch
				return
			}
			k = memcomparable.EncodeBytes(k, []byte(v))
		case types.Varbinary:
			v, ok := values[i].([]byte)
			if !ok {
				err = ErrTypeMismatch
				return
			}
			k = memcomparable.EncodeBytes(k, v)
		default:
			err = ErrTypeMismatch
			return
		}
	}
	return
}

// Insert adds an entry mapping the key values to rowID.
// For a unique index a second entry with the same key values is rejected.
func (idx *Index) Insert(values []interface{}, rowID int64) (err error) {
	k, err := idx.encodeKey(values)
	if err != nil {
		return
	}

	err = util.RunInNewUpdateTxn(idx.kvdb, func(txn peloton.ProviderTxn) (err error) {
		if idx.md.Unique {
			exists, err := txn.Exists(k)
			if err != nil {
				return err
			}
			if exists {
				return ErrDuplicateKey
			}
		} else {
			k = memcomparable.EncodeInt64(k, rowID)
		}
		err = txn.Set(k, memcomparable.EncodeInt64(nil, rowID))
		return
	})
	return
}

// Seek returns the row ids stored under exactly the given key values.
func (idx *Index) Seek(values []interface{}) (rowIDs []int64, err error) {
	k, err := idx.encodeKey(values)
	if err != nil {
		return
	}

	if idx.md.Unique {
		v, err2 := idx.kvdb.Get(k)
		if err2 == kv.ErrKeyNotFound {
			return
		}
		if err2 != nil {
			err = err2
			return
		}
		_, rowID, err2 := memcomparable.DecodeInt64(v)
		if err2 != nil {
			err = err2
			return
		}
		rowIDs = append(rowIDs, rowID)
		return
	}

	var decodeErr error
	err = idx.kvdb.Scan(peloton.ScanOption{Prefix: k}, func(key, value []byte) bool {
		_, rowID, derr := memcomparable.DecodeInt64(value)
		if derr != nil {
			decodeErr = derr
			return false
		}
		rowIDs = append(rowIDs, rowID)
		return true
	})
	if err == nil {
		err = decodeErr
	}
	return
}
