package kv

import (
	"strconv"

	"github.com/linpingchuan/peloton"
)

// IncInt64 increases the value for key k in kv store by step.
func IncInt64(txn peloton.ProviderTxn, k []byte, step int64) (n int64, err error) {
	v, err := txn.Get(k)
	if err == ErrKeyNotFound {
		err = txn.Set(k, []byte(strconv.FormatInt(step, 10)))
		if err != nil {
			return
		}
		n = step
		return
	}
	if err != nil {
		return
	}

	n, err = strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return
	}

	n += step
	err = txn.Set(k, []byte(strconv.FormatInt(n, 10)))
	return
}

// GetInt64 get int64 value which created by IncInt64 method.
func GetInt64(txn peloton.ProviderTxn, k []byte) (n int64, err error) {
	v, err := txn.Get(k)
	if err != nil {
		return
	}

	n, err = strconv.ParseInt(string(v), 10, 64)
	return
}
