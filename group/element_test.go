package group_test

import (
	"strings"
	"testing"

	"github.com/polyspora/pep/group"
	"github.com/polyspora/pep/internal/testdata"
)

func TestElementHexRoundTrip(t *testing.T) {
	d := testdata.New(t.Name())
	e := d.Element()

	got, err := group.ElementFromHex(e.Hex())
	if err != nil {
		t.Fatalf("ElementFromHex: %v", err)
	}
	if !got.Equal(e) {
		t.Fatalf("round trip mismatch: got %s, want %s", got.Hex(), e.Hex())
	}
}

func TestElementFromHexRejectsIdentity(t *testing.T) {
	idHex := strings.Repeat("00", group.ElementSize)
	if _, err := group.ElementFromHex(idHex); err == nil {
		t.Fatal("expected error decoding identity element")
	}
}

func TestElementFromHexRejectsWrongLength(t *testing.T) {
	if _, err := group.ElementFromHex("ab"); err == nil {
		t.Fatal("expected error decoding short hex")
	}
}

func TestElementAlgebra(t *testing.T) {
	d := testdata.New(t.Name())
	_, e := d.KeyPair()
	s := d.Scalar()

	se, err := e.Mul(s)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	back, err := se.DivScalar(s)
	if err != nil {
		t.Fatalf("DivScalar: %v", err)
	}
	if !back.Equal(e) {
		t.Error("(s*e)/s != e")
	}

	if !e.Add(e).Sub(e).Equal(e) {
		t.Error("(e + e) - e != e")
	}
}

func TestElementMulZeroScalarFails(t *testing.T) {
	d := testdata.New(t.Name())
	e := d.Element()
	var zero group.Scalar

	if _, err := e.Mul(zero); err == nil {
		t.Fatal("expected error multiplying by zero scalar")
	}
}

func TestGeneratorIsNotIdentity(t *testing.T) {
	if group.Generator().IsIdentity() {
		t.Fatal("generator element reported as identity")
	}
}

func TestScalarBasePointConsistency(t *testing.T) {
	d := testdata.New(t.Name())
	s := d.Scalar()

	viaBase, err := s.Base()
	if err != nil {
		t.Fatalf("Base: %v", err)
	}
	viaMul, err := group.Generator().Mul(s)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !viaBase.Equal(viaMul) {
		t.Error("s.Base() != G.Mul(s)")
	}
}
