package group_test

import (
	"strings"
	"testing"

	"github.com/polyspora/pep/group"
	"github.com/polyspora/pep/internal/testdata"
)

func TestScalarHexRoundTrip(t *testing.T) {
	d := testdata.New(t.Name())
	s := d.Scalar()

	got, err := group.ScalarFromHex(s.Hex())
	if err != nil {
		t.Fatalf("ScalarFromHex: %v", err)
	}
	if !got.Equal(s) {
		t.Fatalf("round trip mismatch: got %s, want %s", got.Hex(), s.Hex())
	}
}

func TestScalarFromHexRejectsZero(t *testing.T) {
	zeroHex := strings.Repeat("00", group.ScalarSize)
	if _, err := group.ScalarFromHex(zeroHex); err == nil {
		t.Fatal("expected error decoding zero scalar")
	}
}

func TestScalarFromHexRejectsWrongLength(t *testing.T) {
	if _, err := group.ScalarFromHex("ab"); err == nil {
		t.Fatal("expected error decoding short hex")
	}
}

func TestScalarFromHexRejectsNonHex(t *testing.T) {
	bad := strings.Repeat("zz", group.ScalarSize)
	if _, err := group.ScalarFromHex(bad); err == nil {
		t.Fatal("expected error decoding non-hex input")
	}
}

func TestScalarAlgebra(t *testing.T) {
	d := testdata.New(t.Name())
	a := d.Scalar()
	b := d.Scalar()

	if !a.Add(b).Sub(b).Equal(a) {
		t.Error("(a + b) - b != a")
	}
	if !a.Mul(b).Equal(b.Mul(a)) {
		t.Error("a * b != b * a")
	}

	inv, err := a.Invert()
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if !a.Mul(inv).Equal(one(t)) {
		t.Error("a * (1/a) != 1")
	}

	if !a.Complement().Add(a).Equal(one(t)) {
		t.Error("(1 - a) + a != 1")
	}

	if !a.Negate().Add(a).IsZero() {
		t.Error("-a + a != 0")
	}
}

func TestScalarDivByZeroFails(t *testing.T) {
	d := testdata.New(t.Name())
	a := d.Scalar()
	var zero group.Scalar

	if _, err := a.Div(zero); err == nil {
		t.Fatal("expected error dividing by zero")
	}
	if _, err := zero.Invert(); err == nil {
		t.Fatal("expected error inverting zero")
	}
	if _, err := zero.Base(); err == nil {
		t.Fatal("expected error computing zero*G")
	}
}

func TestRandomScalarNeverZero(t *testing.T) {
	for i := 0; i < 64; i++ {
		if group.RandomScalar().IsZero() {
			t.Fatal("RandomScalar returned zero")
		}
	}
}

func TestHashToScalarDeterministic(t *testing.T) {
	a := group.HashToScalar([]byte("alpha"), []byte("beta"))
	b := group.HashToScalar([]byte("alpha"), []byte("beta"))
	if !a.Equal(b) {
		t.Fatal("HashToScalar not deterministic for identical input")
	}

	// The transcript is the raw concatenation of the segments, with no framing between them.
	c := group.HashToScalar([]byte("alphabeta"))
	if !a.Equal(c) {
		t.Fatal("HashToScalar of segmented input differs from HashToScalar of its concatenation")
	}
}

// one returns the scalar 1, built as x * (1/x) for an arbitrary nonzero x.
func one(t *testing.T) group.Scalar {
	t.Helper()
	x := testdata.New("one-helper").Scalar()
	inv, err := x.Invert()
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	return x.Mul(inv)
}
