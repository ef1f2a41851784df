package provider

import (
	"os"
	"testing"

	"github.com/linpingchuan/peloton"
	"github.com/linpingchuan/peloton/kv"
	"gotest.tools/assert"
)

const dataDir = "/tmp/peloton"

func TestProvider(t *testing.T) {

	providers := []func() peloton.KVDB{
		NewBadger, NewLevelDB,
	}

	for _, provider := range providers {
		os.RemoveAll(dataDir)

		b := provider()

		err := b.Open(peloton.KVOption{Dir: dataDir})
		assert.Assert(t, err == nil)

		key1 := []byte("key1")
		{
			// badger will return nil for both nil and empty value

			// test Set nil
			err = b.Set(key1, nil)
			assert.Assert(t, err == nil)
			// test Get nil value
			v, err := b.Get(key1)
			assert.Assert(t, err == nil && v == nil)

			exists, err := b.Exists(key1)
			assert.Assert(t, err == nil && exists)

			// test Set empty
			empty := []byte("")
			err = b.Set(key1, empty)
			assert.Assert(t, err == nil)

			// test Get empty value
			v, err = b.Get(key1)
			assert.Assert(t, err == nil && v == nil)

			exists, err = b.Exists(key1)
			assert.Assert(t, err == nil && exists)
		}

		{
			err = b.Delete(key1)
			assert.Assert(t, err == nil)

			_, err = b.Get(key1)
			assert.Assert(t, err == kv.ErrKeyNotFound)

			exists, err := b.Exists(key1)
			assert.Assert(t, err == nil && !exists)
		}

		{
			// prefix scan preserves key order
			err = b.Set([]byte("scan/2"), []byte("b"))
			assert.Assert(t, err == nil)
			err = b.Set([]byte("scan/1"), []byte("a"))
			assert.Assert(t, err == nil)
			err = b.Set([]byte("other"), []byte("c"))
			assert.Assert(t, err == nil)

			var keys []string
			err = b.Scan(peloton.ScanOption{Prefix: []byte("scan/")}, func(key, value []byte) bool {
				keys = append(keys, string(key))
				return true
			})
			assert.Assert(t, err == nil)
			assert.Assert(t, len(keys) == 2 && keys[0] == "scan/1" && keys[1] == "scan/2")
		}

		err = b.Close()
		assert.Assert(t, err == nil)

	}

}
