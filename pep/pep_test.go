package pep_test

import (
	"testing"

	"github.com/polyspora/pep/group"
	"github.com/polyspora/pep/pep"
)

func TestGenerateGlobalKeysConsistency(t *testing.T) {
	pk, sk, err := pep.GenerateGlobalKeys()
	if err != nil {
		t.Fatalf("GenerateGlobalKeys: %v", err)
	}
	want, err := sk.Base()
	if err != nil {
		t.Fatalf("Base: %v", err)
	}
	if !pk.Equal(want) {
		t.Fatal("public key is not sk*G")
	}
}

func TestGeneratePseudonymStableForSameIdentity(t *testing.T) {
	pk, sk, err := pep.GenerateGlobalKeys()
	if err != nil {
		t.Fatalf("GenerateGlobalKeys: %v", err)
	}

	a, err := pep.GeneratePseudonym("alice@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}
	b, err := pep.GeneratePseudonym("alice@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}

	// Ciphertexts differ (fresh randomness each time) but decrypt to the same pseudonym point.
	if a.Equal(b) {
		t.Fatal("two calls to GeneratePseudonym produced identical ciphertexts")
	}
	decA, err := decrypt(t, a, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	decB, err := decrypt(t, b, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !decA.Equal(decB) {
		t.Fatal("GeneratePseudonym is not stable for the same identity")
	}
}

func TestGeneratePseudonymDiffersAcrossIdentities(t *testing.T) {
	pk, sk, err := pep.GenerateGlobalKeys()
	if err != nil {
		t.Fatalf("GenerateGlobalKeys: %v", err)
	}

	a, err := pep.GeneratePseudonym("alice@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}
	b, err := pep.GeneratePseudonym("bob@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}

	decA, err := decrypt(t, a, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	decB, err := decrypt(t, b, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if decA.Equal(decB) {
		t.Fatal("distinct identities produced the same pseudonym")
	}
}

func TestMakeFactorDeterministicAndContextSensitive(t *testing.T) {
	a := pep.MakeFactor("pseudonym", "server-secret", "ctx-1")
	b := pep.MakeFactor("pseudonym", "server-secret", "ctx-1")
	if !a.Equal(b) {
		t.Fatal("MakeFactor is not deterministic")
	}

	c := pep.MakeFactor("pseudonym", "server-secret", "ctx-2")
	if a.Equal(c) {
		t.Fatal("MakeFactor did not vary with context")
	}

	d := pep.MakeFactor("decryption", "server-secret", "ctx-1")
	if a.Equal(d) {
		t.Fatal("MakeFactor did not vary with type label")
	}
}

func TestConvertToLocalPseudonymRoundTripsWithDecryption(t *testing.T) {
	pk, sk, err := pep.GenerateGlobalKeys()
	if err != nil {
		t.Fatalf("GenerateGlobalKeys: %v", err)
	}

	global, err := pep.GeneratePseudonym("alice@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}

	const secret, decCtx, pseCtx = "server-secret", "session-2026", "contacts"

	local, err := pep.ConvertToLocalPseudonym(global, secret, decCtx, pseCtx)
	if err != nil {
		t.Fatalf("ConvertToLocalPseudonym: %v", err)
	}
	local, err = pep.RerandomizeLocal(local)
	if err != nil {
		t.Fatalf("RerandomizeLocal: %v", err)
	}

	localSk := pep.MakeLocalDecryptionKey(sk, secret, decCtx)
	localPseudonym, err := pep.DecryptLocalPseudonym(local, localSk)
	if err != nil {
		t.Fatalf("DecryptLocalPseudonym: %v", err)
	}

	globalPseudonym, err := decrypt(t, global, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	u := pep.MakeFactor("pseudonym", secret, pseCtx)
	want, err := globalPseudonym.Mul(u)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !localPseudonym.Equal(want) {
		t.Fatal("local decryption did not yield global pseudonym scaled by the pseudonymisation factor")
	}
}

func TestConvertToFromLocalPseudonymInverts(t *testing.T) {
	pk, _, err := pep.GenerateGlobalKeys()
	if err != nil {
		t.Fatalf("GenerateGlobalKeys: %v", err)
	}
	global, err := pep.GeneratePseudonym("alice@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}

	const secret, decCtx, pseCtx = "server-secret", "session-2026", "contacts"

	local, err := pep.ConvertToLocalPseudonym(global, secret, decCtx, pseCtx)
	if err != nil {
		t.Fatalf("ConvertToLocalPseudonym: %v", err)
	}
	back, err := pep.ConvertFromLocalPseudonym(local, secret, decCtx, pseCtx)
	if err != nil {
		t.Fatalf("ConvertFromLocalPseudonym: %v", err)
	}
	if !back.Equal(global) {
		t.Fatal("ConvertFromLocalPseudonym did not invert ConvertToLocalPseudonym")
	}
}

func TestRerandomizeGlobalPreservesPseudonym(t *testing.T) {
	pk, sk, err := pep.GenerateGlobalKeys()
	if err != nil {
		t.Fatalf("GenerateGlobalKeys: %v", err)
	}
	global, err := pep.GeneratePseudonym("alice@example.org", pk)
	if err != nil {
		t.Fatalf("GeneratePseudonym: %v", err)
	}
	re, err := pep.RerandomizeGlobal(global)
	if err != nil {
		t.Fatalf("RerandomizeGlobal: %v", err)
	}
	if global.Equal(re) {
		t.Fatal("RerandomizeGlobal produced an identical ciphertext")
	}

	before, err := decrypt(t, global, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	after, err := decrypt(t, re, sk)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !before.Equal(after) {
		t.Fatal("RerandomizeGlobal changed the underlying pseudonym")
	}
}

// decrypt is a tiny helper wrapping pep.DecryptLocalPseudonym, which works identically for
// still-global ciphertexts since Decrypt never distinguishes the two.
func decrypt(t *testing.T, ct pep.EncryptedPseudonym, sk pep.GlobalSecretKey) (group.Element, error) {
	t.Helper()
	return pep.DecryptLocalPseudonym(ct, sk)
}
