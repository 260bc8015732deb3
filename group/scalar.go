package group

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"github.com/gtank/ristretto255"
)

// ScalarSize is the length in bytes of a canonical Scalar encoding.
const ScalarSize = 32

// Scalar is an integer in [0, L), where L is the ristretto255 group order. The zero value of
// Scalar is the scalar zero; most constructors reject it because inversion and base-point
// multiplication cannot operate on it.
type Scalar struct {
	s *ristretto255.Scalar
}

// raw returns the underlying ristretto255 scalar, treating an unset field (the Go zero value of
// Scalar) as the scalar zero rather than dereferencing a nil pointer.
func (s Scalar) raw() *ristretto255.Scalar {
	if s.s == nil {
		return ristretto255.NewScalar()
	}
	return s.s
}

// RandomScalar returns a uniformly random Scalar in [1, L), per the primitive layer's
// crypto_core_ristretto255_scalar_random semantics: it never returns zero.
func RandomScalar() Scalar {
	s := ristretto255.NewScalar()
	// SetUniformBytes reduces a wide (64-byte) value modulo L; drawing from 64 bytes of
	// crypto/rand input keeps bias negligible, matching libsodium's random-then-reduce approach.
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("group: crypto/rand failure: " + err.Error())
	}
	if _, err := s.SetUniformBytes(buf[:]); err != nil {
		panic("group: unreachable: SetUniformBytes rejected 64 bytes")
	}
	if s.Equal(ristretto255.NewScalar()) == 1 {
		// Resampling on the zero outcome (probability ~2^-252) keeps RandomScalar's contract of
		// never returning zero without skewing the distribution the way force-setting a bit would.
		return RandomScalar()
	}
	return Scalar{s}
}

// ScalarFromHash reduces a 64-byte hash digest modulo L, forcing the low bit of the result to 1
// if the reduction would otherwise be zero. This matches the force-non-zero variant of
// Scalar::FromHash, which downstream operations (Encrypt's Y, Rekey's k, RKS's k and n) rely on
// being non-zero.
func ScalarFromHash(digest [64]byte) Scalar {
	s := ristretto255.NewScalar()
	if _, err := s.SetUniformBytes(digest[:]); err != nil {
		panic("group: unreachable: SetUniformBytes rejected 64 bytes")
	}
	if s.Equal(ristretto255.NewScalar()) == 1 {
		b := s.Bytes()
		b[0] |= 0x01
		if _, err := s.SetCanonicalBytes(b); err != nil {
			panic("group: unreachable: forcing low bit broke canonicity")
		}
	}
	return Scalar{s}
}

// ScalarFromHex decodes a 64-character lowercase hex string into a Scalar. It fails if the
// string is the wrong length, contains non-hex digits, or encodes a non-canonical or zero
// value.
func ScalarFromHex(h string) (Scalar, error) {
	if len(h) != ScalarSize*2 {
		return Scalar{}, ErrInvalidEncoding
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return Scalar{}, ErrInvalidEncoding
	}
	s := ristretto255.NewScalar()
	if _, err := s.SetCanonicalBytes(raw); err != nil {
		return Scalar{}, ErrInvalidEncoding
	}
	if s.Equal(ristretto255.NewScalar()) == 1 {
		return Scalar{}, ErrInvalidEncoding
	}
	return Scalar{s}, nil
}

// Hex encodes the Scalar as 64 lowercase hex characters.
func (s Scalar) Hex() string {
	return hex.EncodeToString(s.raw().Bytes())
}

// Bytes returns the 32-byte little-endian canonical encoding.
func (s Scalar) Bytes() []byte {
	return s.raw().Bytes()
}

// Equal reports whether s and t encode the same value, in constant time.
func (s Scalar) Equal(t Scalar) bool {
	return subtle.ConstantTimeCompare(s.raw().Bytes(), t.raw().Bytes()) == 1
}

// IsZero reports whether s is the zero scalar, in constant time.
func (s Scalar) IsZero() bool {
	return s.raw().Equal(ristretto255.NewScalar()) == 1
}

// Add returns s + t (mod L).
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{ristretto255.NewScalar().Add(s.raw(), t.raw())}
}

// Sub returns s - t (mod L).
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{ristretto255.NewScalar().Subtract(s.raw(), t.raw())}
}

// Mul returns s * t (mod L).
func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{ristretto255.NewScalar().Multiply(s.raw(), t.raw())}
}

// Div returns s / t (mod L). Fails if t is zero.
func (s Scalar) Div(t Scalar) (Scalar, error) {
	inv, err := t.Invert()
	if err != nil {
		return Scalar{}, err
	}
	return s.Mul(inv), nil
}

// Invert returns 1/s (mod L). Fails if s is zero.
func (s Scalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrZeroScalar
	}
	return Scalar{ristretto255.NewScalar().Invert(s.raw())}, nil
}

// Complement returns 1 - s (mod L).
func (s Scalar) Complement() Scalar {
	return Scalar{ristretto255.NewScalar().Subtract(oneScalar(), s.raw())}
}

// oneScalar returns the scalar 1.
func oneScalar() *ristretto255.Scalar {
	one := ristretto255.NewScalar()
	b := make([]byte, ScalarSize)
	b[0] = 1
	if _, err := one.SetCanonicalBytes(b); err != nil {
		panic("group: unreachable: 1 is always canonical")
	}
	return one
}

// Negate returns -s (mod L).
func (s Scalar) Negate() Scalar {
	return Scalar{ristretto255.NewScalar().Negate(s.raw())}
}

// Base returns s*G, the group element obtained by multiplying the generator by s. Fails if s is
// zero, since a zero-scalar base multiplication yields the identity, which this library never
// treats as a valid encrypted/public value.
func (s Scalar) Base() (Element, error) {
	if s.IsZero() {
		return Element{}, ErrZeroScalar
	}
	return Element{ristretto255.NewIdentityElement().ScalarBaseMult(s.raw())}, nil
}

// HashToScalar reduces SHA-512(data) modulo L using the same force-non-zero rule as
// ScalarFromHash. It is the building block for MakeFactor (pep package) and for any other
// deterministic scalar derivation from a byte transcript.
func HashToScalar(data ...[]byte) Scalar {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	var digest [64]byte
	copy(digest[:], h.Sum(nil))
	return ScalarFromHash(digest)
}
