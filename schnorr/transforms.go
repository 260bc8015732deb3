package schnorr

import (
	"github.com/polyspora/pep/elgamal"
	"github.com/polyspora/pep/group"
)

// Rerandomized bundles the proof that an elgamal.Ciphertext was rerandomized correctly: that the
// new (B, C) differ from the old ones by exactly s*G and s*Y for some known s, without revealing
// s.
type Rerandomized struct {
	S     group.Element // s*G, the commitment
	Proof Proof
}

// ProveRerandomize proves that applying Rerandomize with factor s to in is well-formed.
func ProveRerandomize(in elgamal.Ciphertext, s group.Scalar) (Rerandomized, error) {
	A, p, err := CreateProof(s, in.Y)
	if err != nil {
		return Rerandomized{}, err
	}
	return Rerandomized{S: A, Proof: p}, nil
}

// VerifyRerandomize checks bundle against in and, on success, returns the rerandomized
// ciphertext it attests to.
func VerifyRerandomize(in elgamal.Ciphertext, bundle Rerandomized) (elgamal.Ciphertext, bool) {
	if !VerifyProof(bundle.S, in.Y, bundle.Proof) {
		return elgamal.Ciphertext{}, false
	}
	return elgamal.Ciphertext{
		B: bundle.S.Add(in.B),
		C: bundle.Proof.N.Add(in.C),
		Y: in.Y,
	}, true
}

// Reshuffled bundles the two paired proofs that an elgamal.Ciphertext was reshuffled correctly
// by the same factor n on both B and C. AB and AC are both n*G; carrying both rather than just
// one costs 32 extra bytes but lets the verifier check each proof against its own commitment,
// matching the reference scheme.
type Reshuffled struct {
	AB group.Element
	PB Proof
	AC group.Element
	PC Proof
}

// ProveReshuffle proves that applying Reshuffle with factor n to in is well-formed.
func ProveReshuffle(in elgamal.Ciphertext, n group.Scalar) (Reshuffled, error) {
	AB, pb, err := CreateProof(n, in.B)
	if err != nil {
		return Reshuffled{}, err
	}
	AC, pc, err := CreateProof(n, in.C)
	if err != nil {
		return Reshuffled{}, err
	}
	return Reshuffled{AB: AB, PB: pb, AC: AC, PC: pc}, nil
}

// VerifyReshuffle checks bundle against in and, on success, returns the reshuffled ciphertext
// it attests to.
func VerifyReshuffle(in elgamal.Ciphertext, bundle Reshuffled) (elgamal.Ciphertext, bool) {
	if !bundle.AB.Equal(bundle.AC) {
		return elgamal.Ciphertext{}, false
	}
	if !VerifyProof(bundle.AB, in.B, bundle.PB) {
		return elgamal.Ciphertext{}, false
	}
	if !VerifyProof(bundle.AC, in.C, bundle.PC) {
		return elgamal.Ciphertext{}, false
	}
	return elgamal.Ciphertext{
		B: bundle.PB.N,
		C: bundle.PC.N,
		Y: in.Y,
	}, true
}

// Rekeyed bundles the two paired proofs that an elgamal.Ciphertext was rekeyed correctly by the
// same factor k on both B (divided) and Y (multiplied).
type Rekeyed struct {
	AB group.Element
	PB Proof
	AY group.Element
	PY Proof
}

// ProveRekey proves that applying Rekey with factor k to in is well-formed. The proof is built
// over k's inverse for the B component, since Rekey divides B by k, and over k itself for Y.
func ProveRekey(in elgamal.Ciphertext, k group.Scalar) (Rekeyed, error) {
	kInv, err := k.Invert()
	if err != nil {
		return Rekeyed{}, err
	}
	AB, pb, err := CreateProof(kInv, in.B)
	if err != nil {
		return Rekeyed{}, err
	}
	AY, py, err := CreateProof(k, in.Y)
	if err != nil {
		return Rekeyed{}, err
	}
	return Rekeyed{AB: AB, PB: pb, AY: AY, PY: py}, nil
}

// VerifyRekey checks bundle against in and, on success, returns the rekeyed ciphertext it
// attests to. C is carried through unchanged by Rekey, so it is only required to be a valid
// (non-identity) element.
func VerifyRekey(in elgamal.Ciphertext, bundle Rekeyed) (elgamal.Ciphertext, bool) {
	if !in.C.Valid() {
		return elgamal.Ciphertext{}, false
	}
	if !VerifyProof(bundle.AB, in.B, bundle.PB) {
		return elgamal.Ciphertext{}, false
	}
	if !VerifyProof(bundle.AY, in.Y, bundle.PY) {
		return elgamal.Ciphertext{}, false
	}
	return elgamal.Ciphertext{
		B: bundle.PB.N,
		C: in.C,
		Y: bundle.PY.N,
	}, true
}

// PublicFactor returns k*G, the public commitment to the rekey factor. A recipient server can
// use this to confirm which key a ciphertext was rekeyed toward without learning k.
func (r Rekeyed) PublicFactor() group.Element {
	return r.AY
}

// RKSProof bundles the three paired proofs behind a combined Rekey+Reshuffle: one pair each for
// B, C, and Y, all driven by the shared factors k and n.
type RKSProof struct {
	AB group.Element
	PB Proof
	AC group.Element
	PC Proof
	AY group.Element
	PY Proof
}

// ProveRKS proves that applying RKS with factors k, n to in is well-formed. The component order
// is fixed as B, C, Y: a verifier must check and reconstruct in that order.
func ProveRKS(in elgamal.Ciphertext, k, n group.Scalar) (RKSProof, error) {
	nk, err := n.Div(k)
	if err != nil {
		return RKSProof{}, err
	}
	AB, pb, err := CreateProof(nk, in.B)
	if err != nil {
		return RKSProof{}, err
	}
	AC, pc, err := CreateProof(n, in.C)
	if err != nil {
		return RKSProof{}, err
	}
	AY, py, err := CreateProof(k, in.Y)
	if err != nil {
		return RKSProof{}, err
	}
	return RKSProof{AB: AB, PB: pb, AC: AC, PC: pc, AY: AY, PY: py}, nil
}

// VerifyRKS checks bundle against in, in the fixed B, C, Y order, and on success returns the
// transformed ciphertext it attests to.
func VerifyRKS(in elgamal.Ciphertext, bundle RKSProof) (elgamal.Ciphertext, bool) {
	if !VerifyProof(bundle.AB, in.B, bundle.PB) {
		return elgamal.Ciphertext{}, false
	}
	if !VerifyProof(bundle.AC, in.C, bundle.PC) {
		return elgamal.Ciphertext{}, false
	}
	if !VerifyProof(bundle.AY, in.Y, bundle.PY) {
		return elgamal.Ciphertext{}, false
	}
	return elgamal.Ciphertext{
		B: bundle.PB.N,
		C: bundle.PC.N,
		Y: bundle.PY.N,
	}, true
}

// PublicFactor returns k*G, the public commitment to the rekey factor.
func (r RKSProof) PublicFactor() group.Element {
	return r.AY
}
