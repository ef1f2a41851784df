package memcomparable

import "math"

func encodeFloat64ToUint64(f float64) uint64 {
	u := math.Float64bits(f)
	if f >= 0 {
		u |= signMask
	} else {
		u = ^u
	}
	return u
}

func decodeUint64ToFloat64(u uint64) float64 {
	if u&signMask > 0 {
		u &= ^signMask
	} else {
		u = ^u
	}
	return math.Float64frombits(u)
}

// EncodeFloat64 for convert float64 to memcomparable-format
func EncodeFloat64(b []byte, v float64) []byte {
	u := encodeFloat64ToUint64(v)
	return EncodeUint64(b, u)
}

// DecodeFloat64 decodes a float64 from a byte slice generated with EncodeFloat64 before.
func DecodeFloat64(b []byte) ([]byte, float64, error) {
	b, u, err := DecodeUint64(b)
	return b, decodeUint64ToFloat64(u), err
}
