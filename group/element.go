package group

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"github.com/gtank/ristretto255"
)

// ElementSize is the length in bytes of a ristretto255 encoding.
const ElementSize = 32

// Element is a ristretto255 group element. The zero value is not a valid Element; use
// RandomElement, ElementFromHash, or ElementFromHex, or derive one from a Scalar's Base method.
type Element struct {
	e *ristretto255.Element
}

// raw returns the underlying ristretto255 element, treating an unset field (the Go zero value
// of Element) as the identity element rather than dereferencing a nil pointer.
func (e Element) raw() *ristretto255.Element {
	if e.e == nil {
		return identity()
	}
	return e.e
}

// identity returns the ristretto255 identity element (the all-zero encoding).
func identity() *ristretto255.Element {
	return ristretto255.NewIdentityElement()
}

// Generator returns the distinguished base point G.
func Generator() Element {
	return Element{ristretto255.NewGeneratorElement()}
}

// RandomElement returns a uniformly random group element. Unlike RandomScalar, this may be the
// identity element (hash-to-curve over random input can, with negligible but nonzero
// probability, land on the identity); callers that need a non-identity element should check
// IsIdentity.
func RandomElement() Element {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("group: crypto/rand failure: " + err.Error())
	}
	e := identity()
	if _, err := e.SetUniformBytes(buf[:]); err != nil {
		panic("group: unreachable: SetUniformBytes rejected 64 bytes")
	}
	return Element{e}
}

// ElementFromHash maps a 64-byte hash digest to a group element via ristretto255's
// hash-to-curve construction.
func ElementFromHash(digest [64]byte) Element {
	e := identity()
	if _, err := e.SetUniformBytes(digest[:]); err != nil {
		panic("group: unreachable: SetUniformBytes rejected 64 bytes")
	}
	return Element{e}
}

// ElementFromHex decodes a 64-character lowercase hex string into an Element. It fails if the
// string is the wrong length, contains non-hex digits, does not decode to a valid ristretto255
// point, or decodes to the identity element.
func ElementFromHex(h string) (Element, error) {
	if len(h) != ElementSize*2 {
		return Element{}, ErrInvalidEncoding
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return Element{}, ErrInvalidEncoding
	}
	e := identity()
	if _, err := e.SetCanonicalBytes(raw); err != nil {
		return Element{}, ErrInvalidEncoding
	}
	el := Element{e}
	if el.IsIdentity() {
		return Element{}, ErrInvalidEncoding
	}
	return el, nil
}

// Hex encodes the Element as 64 lowercase hex characters.
func (e Element) Hex() string {
	return hex.EncodeToString(e.raw().Bytes())
}

// Bytes returns the 32-byte ristretto255 encoding.
func (e Element) Bytes() []byte {
	return e.raw().Bytes()
}

// Equal reports whether e and f encode the same point, in constant time.
func (e Element) Equal(f Element) bool {
	return subtle.ConstantTimeCompare(e.raw().Bytes(), f.raw().Bytes()) == 1
}

// IsIdentity reports whether e is the ristretto255 identity element.
func (e Element) IsIdentity() bool {
	return e.raw().Equal(identity()) == 1
}

// Valid reports whether e holds a properly constructed, non-identity group element. Elements
// decoded by ElementFromHex, and those returned without error by Mul, DivScalar and
// Scalar.Base, are always Valid; RandomElement and ElementFromHash can, with negligible
// probability, return the identity. The method also lets callers that pass an Element through
// a zero-valued struct field check it defensively.
func (e Element) Valid() bool {
	return !e.IsIdentity()
}

// Add returns e + f.
func (e Element) Add(f Element) Element {
	return Element{identity().Add(e.raw(), f.raw())}
}

// Sub returns e - f.
func (e Element) Sub(f Element) Element {
	return Element{identity().Subtract(e.raw(), f.raw())}
}

// Mul returns s*e. Fails if s is zero or e is the identity, since ristretto255 scalar
// multiplication by zero (or of the identity) collapses to the identity, which this library
// never treats as a meaningful ciphertext or key component.
func (e Element) Mul(s Scalar) (Element, error) {
	if s.IsZero() {
		return Element{}, ErrZeroScalar
	}
	if e.IsIdentity() {
		return Element{}, ErrIdentityElement
	}
	return Element{identity().ScalarMult(s.raw(), e.raw())}, nil
}

// DivScalar returns e/s, computed as (1/s)*e. Fails if s is zero.
func (e Element) DivScalar(s Scalar) (Element, error) {
	inv, err := s.Invert()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}
