// Package group implements the ristretto255 scalar field and group, the algebraic foundation
// for the ElGamal ciphertexts and Schnorr proofs built on top of it.
//
// Scalar and GroupElement wrap github.com/gtank/ristretto255, enforcing the canonical-encoding
// and non-zero/non-identity invariants spelled out in the data model: a Scalar or GroupElement
// value that exists in memory may be zero or identity, but every constructor that deserialises
// or derives one from untrusted input rejects the cases operations cannot tolerate.
package group

import "errors"

// ErrInvalidEncoding is returned when hex or raw bytes do not decode to a canonical Scalar or a
// valid, non-identity GroupElement.
var ErrInvalidEncoding = errors.New("group: invalid encoding")

// ErrZeroScalar is returned by operations that require a non-zero Scalar (Invert, base-point
// multiplication, and any transform factor that must be invertible).
var ErrZeroScalar = errors.New("group: scalar is zero")

// ErrIdentityElement is returned by operations that require a non-identity GroupElement.
var ErrIdentityElement = errors.New("group: element is the identity")
