package util

import (
	"github.com/linpingchuan/peloton"
)

// RunInNewUpdateTxn for run f in a new update transaction
func RunInNewUpdateTxn(kvdb peloton.KVDB, f func(peloton.ProviderTxn) error) (err error) {
	txn := kvdb.NewTransaction(true)
	defer txn.Discard()

	err = f(txn)
	if err != nil {
		return
	}

	err = txn.Commit()
	return
}

// RunInNewTxn for run f in a new read-only transaction
func RunInNewTxn(kvdb peloton.KVDB, f func(peloton.ProviderTxn) error) (err error) {
	txn := kvdb.NewTransaction(false)
	defer txn.Discard()

	err = f(txn)

	return
}
