// Package elgamal implements ElGamal encryption over the ristretto255 group (package group) and
// its four homomorphic transforms: Rerandomize, Rekey, Reshuffle, and the combined RKS.
//
// A Ciphertext is self-describing: it carries the public key Y it was encrypted (or last
// rekeyed) under, so that Rekey and RKS can rewrite it without any side-channel carrying the new
// key.
package elgamal

import (
	"encoding/hex"

	"github.com/polyspora/pep/group"
)

// HexSize is the length in hex characters of an encoded Ciphertext (three 32-byte elements).
const HexSize = 3 * group.ElementSize * 2

// Ciphertext is an ElGamal triple (B, C, Y) with B = r*G, C = M + r*Y, Y = y*G for some
// randomness r, plaintext point M, and public key Y.
type Ciphertext struct {
	B, C, Y group.Element
}

// Hex encodes the ciphertext as B‖C‖Y, 192 lowercase hex characters.
func (c Ciphertext) Hex() string {
	return c.B.Hex() + c.C.Hex() + c.Y.Hex()
}

// FromHex decodes a Ciphertext from its 192-character hex encoding, rejecting the wrong length
// and delegating component validation (canonical encoding, non-identity) to group.ElementFromHex.
func FromHex(h string) (Ciphertext, error) {
	if len(h) != HexSize {
		return Ciphertext{}, group.ErrInvalidEncoding
	}
	if _, err := hex.DecodeString(h); err != nil {
		return Ciphertext{}, group.ErrInvalidEncoding
	}
	b, err := group.ElementFromHex(h[0:64])
	if err != nil {
		return Ciphertext{}, err
	}
	c, err := group.ElementFromHex(h[64:128])
	if err != nil {
		return Ciphertext{}, err
	}
	y, err := group.ElementFromHex(h[128:192])
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{B: b, C: c, Y: y}, nil
}

// Equal reports whether two ciphertexts are componentwise equal.
func (c Ciphertext) Equal(o Ciphertext) bool {
	return c.B.Equal(o.B) && c.C.Equal(o.C) && c.Y.Equal(o.Y)
}

// Encrypt encrypts plaintext point m under public key y, sampling fresh randomness r. It fails
// if y is the identity element: encrypting under an empty public key would hand the plaintext
// over unprotected, since C = M + r*0 = M.
func Encrypt(m, y group.Element) (Ciphertext, error) {
	if y.IsIdentity() {
		return Ciphertext{}, group.ErrIdentityElement
	}
	r := group.RandomScalar()
	b, err := r.Base()
	if err != nil {
		return Ciphertext{}, err
	}
	ry, err := y.Mul(r)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{B: b, C: m.Add(ry), Y: y}, nil
}

// Decrypt recovers the plaintext point from a ciphertext using secret key y, where
// in.Y == y*G.
func Decrypt(in Ciphertext, y group.Scalar) (group.Element, error) {
	yb, err := in.B.Mul(y)
	if err != nil {
		return group.Element{}, err
	}
	return in.C.Sub(yb), nil
}

// Rerandomize replaces the randomness r with r+s without altering the plaintext or the key the
// ciphertext decrypts under.
func Rerandomize(in Ciphertext, s group.Scalar) (Ciphertext, error) {
	sg, err := s.Base()
	if err != nil {
		return Ciphertext{}, err
	}
	sy, err := in.Y.Mul(s)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{B: sg.Add(in.B), C: sy.Add(in.C), Y: in.Y}, nil
}

// Rekey rewrites the ciphertext so that it decrypts under k*y instead of y, where y is the
// secret key corresponding to in.Y. Fails if k is zero.
func Rekey(in Ciphertext, k group.Scalar) (Ciphertext, error) {
	b, err := in.B.DivScalar(k)
	if err != nil {
		return Ciphertext{}, err
	}
	ky, err := in.Y.Mul(k)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{B: b, C: in.C, Y: ky}, nil
}

// Reshuffle rewrites the ciphertext so that it decrypts to n*M instead of M. Fails if n is zero.
func Reshuffle(in Ciphertext, n group.Scalar) (Ciphertext, error) {
	b, err := in.B.Mul(n)
	if err != nil {
		return Ciphertext{}, err
	}
	c, err := in.C.Mul(n)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{B: b, C: c, Y: in.Y}, nil
}

// RKS combines Rekey(k) and Reshuffle(n) in a single operation:
// RKS(e, k, n) == Rekey(Reshuffle(e, n), k) == Reshuffle(Rekey(e, k), n). Fails if k or n is
// zero.
func RKS(in Ciphertext, k, n group.Scalar) (Ciphertext, error) {
	nk, err := n.Div(k)
	if err != nil {
		return Ciphertext{}, err
	}
	b, err := in.B.Mul(nk)
	if err != nil {
		return Ciphertext{}, err
	}
	c, err := in.C.Mul(n)
	if err != nil {
		return Ciphertext{}, err
	}
	ky, err := in.Y.Mul(k)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{B: b, C: c, Y: ky}, nil
}
