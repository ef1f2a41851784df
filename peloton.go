package peloton

type (

	// KVDB is the single interface a key value store needs to implement to back
	// physical tables and indexes
	KVDB interface {
		KVOP
		Open(option KVOption) error
		Close() error
		NewTransaction(update bool) ProviderTxn
	}

	// KVOP for common operations on kv
	KVOP interface {
		Set(k, v []byte) error
		Exists(k []byte) (bool, error) // maybe cheaper than Get
		Get(k []byte) ([]byte, error)
		Delete(k []byte) error
		// key and value is only valid before fn returns
		Scan(option ScanOption, fn func(key []byte, value []byte) bool) error
	}

	// ProviderTxn is a transaction against a provider
	ProviderTxn interface {
		KVOP
		Commit() error
		Discard()
	}

	// KVOption for KVDB
	KVOption struct {
		Dir string
	}

	// ScanOption for Scan
	ScanOption struct {
		// Direction of iteration. False is forward, true is backward.
		Reverse bool
		// Only iterate over this given prefix.
		Prefix []byte
		// Offset would seek to the provided key if present. If absent, it would seek
		// to the next smallest key greater than the provided key if iterating in the
		// forward direction.
		Offset []byte
	}
)
