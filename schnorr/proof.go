// Package schnorr implements a single-shape Schnorr zero-knowledge proof of knowledge, made
// non-interactive via the Fiat–Shamir transform, and reuses it both as a digital signature
// scheme and as the proof system behind each of the elgamal package's ciphertext transforms.
//
// A Proof demonstrates knowledge of a scalar a such that A = a*G and N = a*M for a public point
// M, without revealing a. The commitment A is supplied to the verifier alongside the Proof but
// is never stored inside it; the proved-transform bundles in transforms.go store each proof
// next to its own commitment.
package schnorr

import (
	"encoding/hex"

	"github.com/polyspora/pep/group"
)

// HexSize is the length in hex characters of an encoded Proof (N, C1, C2, S).
const HexSize = 4 * group.ElementSize * 2

// Proof is a non-interactive Schnorr proof (N, C1, C2, s). The verifier-facing commitment A is
// not part of the struct; see CreateProof and VerifyProof.
type Proof struct {
	N, C1, C2 group.Element
	S         group.Scalar
}

// Hex encodes the proof as N‖C1‖C2‖S, 256 lowercase hex characters.
func (p Proof) Hex() string {
	return p.N.Hex() + p.C1.Hex() + p.C2.Hex() + p.S.Hex()
}

// Equal reports whether p and o encode the same proof.
func (p Proof) Equal(o Proof) bool {
	return p.N.Equal(o.N) && p.C1.Equal(o.C1) && p.C2.Equal(o.C2) && p.S.Equal(o.S)
}

// ProofFromHex decodes a Proof from its hex encoding.
func ProofFromHex(h string) (Proof, error) {
	if len(h) != HexSize {
		return Proof{}, group.ErrInvalidEncoding
	}
	if _, err := hex.DecodeString(h); err != nil {
		return Proof{}, group.ErrInvalidEncoding
	}
	n, err := group.ElementFromHex(h[0:64])
	if err != nil {
		return Proof{}, err
	}
	c1, err := group.ElementFromHex(h[64:128])
	if err != nil {
		return Proof{}, err
	}
	c2, err := group.ElementFromHex(h[128:192])
	if err != nil {
		return Proof{}, err
	}
	s, err := group.ScalarFromHex(h[192:256])
	if err != nil {
		return Proof{}, err
	}
	return Proof{N: n, C1: c1, C2: c2, S: s}, nil
}

// challenge derives e = H(A‖M‖N‖C1‖C2) using the raw 32-byte encodings in exactly that order.
// This ordering is a cross-implementation wire contract: any deviation forks compatibility with
// other implementations of the same scheme.
func challenge(a, m, n, c1, c2 group.Element) group.Scalar {
	return group.HashToScalar(a.Bytes(), m.Bytes(), n.Bytes(), c1.Bytes(), c2.Bytes())
}

// CreateProof proves knowledge of secret a such that A = a*G and N = a*M, for public point m.
// Returns the commitment A (transmitted alongside the proof, not inside it) and the Proof
// itself. Fails only if a is zero, since base-point and point multiplication by zero are
// domain errors (group.ErrZeroScalar), or if m is the identity element.
func CreateProof(a group.Scalar, m group.Element) (group.Element, Proof, error) {
	r := group.RandomScalar()

	A, err := a.Base()
	if err != nil {
		return group.Element{}, Proof{}, err
	}
	n, err := m.Mul(a)
	if err != nil {
		return group.Element{}, Proof{}, err
	}
	c1, err := r.Base()
	if err != nil {
		return group.Element{}, Proof{}, err
	}
	c2, err := m.Mul(r)
	if err != nil {
		return group.Element{}, Proof{}, err
	}

	e := challenge(A, m, n, c1, c2)
	s := a.Mul(e).Add(r)

	return A, Proof{N: n, C1: c1, C2: c2, S: s}, nil
}

// VerifyProof checks that p proves knowledge of the discrete log relating A = a*G and the
// public point m, for some a, without learning a. A failed verification is an expected outcome
// of adversarial or corrupted input, never a Go error.
func VerifyProof(a, m group.Element, p Proof) bool {
	e := challenge(a, m, p.N, p.C1, p.C2)

	sG, err := p.S.Base()
	if err != nil {
		return false
	}
	eA, err := a.Mul(e)
	if err != nil {
		return false
	}
	if !sG.Equal(eA.Add(p.C1)) {
		return false
	}

	sM, err := m.Mul(p.S)
	if err != nil {
		return false
	}
	eN, err := p.N.Mul(e)
	if err != nil {
		return false
	}
	return sM.Equal(eN.Add(p.C2))
}

// Signature is exactly a Proof whose public point M is the signed message (as a group element)
// and whose commitment A is the signer's public key.
type Signature = Proof

// Sign produces a Signature over messagePoint using secret key sk. Callers that sign arbitrary
// bytes must first map them to a group element, e.g. via group.ElementFromHash over a SHA-512
// digest (hash-to-curve), since this scheme only ever signs points.
func Sign(messagePoint group.Element, sk group.Scalar) (Signature, error) {
	_, p, err := CreateProof(sk, messagePoint)
	return p, err
}

// Verify checks sig as a signature over messagePoint under public key pk (pk = sk*G).
func Verify(messagePoint group.Element, sig Signature, pk group.Element) bool {
	return VerifyProof(pk, messagePoint, sig)
}
