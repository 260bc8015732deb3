// Package testdata provides a deterministic random bit generator for testing.
package testdata

import (
	"crypto/sha3"

	"github.com/polyspora/pep/group"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// KeyPair returns a deterministic ristretto255 key pair from the DRBG.
func (d *DRBG) KeyPair() (group.Scalar, group.Element) {
	var digest [64]byte
	copy(digest[:], d.Data(64))
	x := group.ScalarFromHash(digest)
	y, err := x.Base()
	if err != nil {
		panic("testdata: unreachable: ScalarFromHash never returns zero")
	}
	return x, y
}

// Scalar returns a deterministic, non-zero Scalar from the DRBG.
func (d *DRBG) Scalar() group.Scalar {
	var digest [64]byte
	copy(digest[:], d.Data(64))
	return group.ScalarFromHash(digest)
}

// Element returns a deterministic group element from the DRBG.
func (d *DRBG) Element() group.Element {
	var digest [64]byte
	copy(digest[:], d.Data(64))
	return group.ElementFromHash(digest)
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}
