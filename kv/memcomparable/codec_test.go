package memcomparable

import (
	"bytes"
	"testing"
)

func TestBytes(t *testing.T) {
	abc := []byte("abc")
	def := []byte("def")

	{
		leftover, data, err := DecodeBytes(EncodeBytes(nil, abc), nil)
		if len(leftover) != 0 || !bytes.Equal(data, abc) || err != nil {
			t.FailNow()
		}
	}

	// encoded form must order the same way as the raw form
	if bytes.Compare(EncodeBytes(nil, abc), EncodeBytes(nil, def)) >= 0 {
		t.FailNow()
	}

	// a key must sort before any of its extensions
	if bytes.Compare(EncodeBytes(nil, abc), EncodeBytes(nil, []byte("abca"))) >= 0 {
		t.FailNow()
	}

	// composite keys decode field by field
	composite := EncodeBytes(EncodeBytes(nil, abc), def)
	leftover, data, err := DecodeBytes(composite, nil)
	if err != nil || !bytes.Equal(data, abc) {
		t.FailNow()
	}
	leftover, data, err = DecodeBytes(leftover, nil)
	if err != nil || len(leftover) != 0 || !bytes.Equal(data, def) {
		t.FailNow()
	}
}

func TestNumber(t *testing.T) {
	if EncodeInt64ToUint64(1) < EncodeInt64ToUint64(-1) {
		t.FailNow()
	}

	if bytes.Compare(EncodeInt64(nil, 1), EncodeInt64(nil, -1)) <= 0 {
		t.FailNow()
	}

	if bytes.Compare(EncodeUint64(nil, 2), EncodeUint64(nil, 1)) <= 0 {
		t.FailNow()
	}

	leftover, v, err := DecodeInt64(EncodeInt64(nil, -42))
	if err != nil || len(leftover) != 0 || v != -42 {
		t.FailNow()
	}
}

func TestFloat(t *testing.T) {
	if encodeFloat64ToUint64(1.1) < encodeFloat64ToUint64(-1.1) {
		t.FailNow()
	}

	if bytes.Compare(EncodeFloat64(nil, 1.1), EncodeFloat64(nil, -1.1)) <= 0 {
		t.FailNow()
	}

	leftover, v, err := DecodeFloat64(EncodeFloat64(nil, -1.5))
	if err != nil || len(leftover) != 0 || v != -1.5 {
		t.FailNow()
	}
}
