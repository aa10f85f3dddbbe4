package revenuetest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/retok/revenue"
)

var counter uint64

// NewCondition returns a condition that is unique within the test binary.
func NewCondition() revenue.Condition {
	n := atomic.AddUint64(&counter, 1)
	return revenue.NewCondition("test", "user", SequenceID(n))
}

// NewAddress returns an address that is unique within the test binary.
func NewAddress() revenue.Address {
	return NewCondition().Address()
}

// SequenceID returns the big endian encoding of n, the same format the
// orm sequences use for identifiers.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// revenue.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) revenue.Address {
	t.Helper()

	addr, err := revenue.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
