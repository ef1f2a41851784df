package provider

import (
	"github.com/dgraph-io/badger"
	"github.com/linpingchuan/peloton"
	"github.com/linpingchuan/peloton/kv"
)

// Txn is peloton wrapper for badger.Txn
type Txn badger.Txn

// Set for implement peloton.ProviderTxn
func (txn *Txn) Set(k, v []byte) (err error) {
	defer func() {
		if err == badger.ErrTxnTooBig {
			err = kv.ErrTxnTooBig
		}
	}()

	err = (*badger.Txn)(txn).Set(k, v)
	return
}

// Exists checks whether k exists
func (txn *Txn) Exists(k []byte) (exists bool, err error) {

	_, err = (*badger.Txn)(txn).Get(k)
	if err == badger.ErrKeyNotFound {
		err = nil
		return
	}
	if err != nil {
		return
	}

	exists = true
	return
}

// Get for implement peloton.ProviderTxn
func (txn *Txn) Get(k []byte) (v []byte, err error) {

	item, err := (*badger.Txn)(txn).Get(k)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			err = kv.ErrKeyNotFound
		}
		return
	}

	v, err = item.ValueCopy(nil)
	return
}

// Delete for implement peloton.ProviderTxn
func (txn *Txn) Delete(key []byte) (err error) {
	defer func() {
		if err == badger.ErrTxnTooBig {
			err = kv.ErrTxnTooBig
		}
	}()

	err = (*badger.Txn)(txn).Delete(key)
	return
}

// Commit for implement peloton.ProviderTxn
func (txn *Txn) Commit() (err error) {
	err = (*badger.Txn)(txn).Commit()
	return
}

// Discard for implement peloton.ProviderTxn
func (txn *Txn) Discard() {
	(*badger.Txn)(txn).Discard()
}

// Scan over keys specified by option
func (txn *Txn) Scan(option peloton.ScanOption, fn func(key []byte, value []byte) bool) (err error) {
	err = scanByBadgerTxn((*badger.Txn)(txn), option, fn)

	return
}
