// Package pep implements the polymorphic encryption and pseudonymisation pipeline: global key
// generation, pseudonym derivation from an identity string, context-scoped conversion of a
// pseudonym from its global form to a form local to one (secret, decryption-context,
// pseudonymisation-context) triple, and local decryption.
//
// Every server-side secret and context pair is combined into the same two scalars — a
// pseudonymisation factor and a decryption factor — via MakeFactor, which is a fixed
// cross-implementation transcript (type "|" secret "|" context, SHA-512) and must not be
// reframed through any higher-level hashing abstraction.
package pep

import (
	"crypto/sha512"

	"github.com/polyspora/pep/elgamal"
	"github.com/polyspora/pep/group"
)

// GlobalPublicKey and GlobalSecretKey are the system-wide ElGamal key pair under which
// pseudonyms are first encrypted.
type GlobalPublicKey = group.Element
type GlobalSecretKey = group.Scalar

// EncryptedPseudonym is an ElGamal ciphertext encrypting a pseudonym point, whether still in its
// global form or already converted to a local one.
type EncryptedPseudonym = elgamal.Ciphertext

// LocalDecryptionKey is the scalar a server derives to decrypt a pseudonym it has locally
// converted for itself.
type LocalDecryptionKey = group.Scalar

// LocalPseudonym is the group element recovered by decrypting a local EncryptedPseudonym.
type LocalPseudonym = group.Element

// GenerateGlobalKeys produces a fresh system-wide ElGamal key pair.
func GenerateGlobalKeys() (GlobalPublicKey, GlobalSecretKey, error) {
	sk := group.RandomScalar()
	pk, err := sk.Base()
	if err != nil {
		return group.Element{}, group.Scalar{}, err
	}
	return pk, sk, nil
}

// GeneratePseudonym maps an identity string to a group element via hash-to-curve and encrypts
// it under the global public key, yielding the pseudonym's first (global) encrypted form.
func GeneratePseudonym(identity string, pk GlobalPublicKey) (EncryptedPseudonym, error) {
	digest := sha512.Sum512([]byte(identity))
	p := group.ElementFromHash(digest)
	return elgamal.Encrypt(p, pk)
}

// MakeFactor derives a scalar deterministically from a type label, a server secret, and a
// context string. The transcript is the raw concatenation type "|" secret "|" context fed to
// SHA-512 — an exact wire contract any compatible implementation must reproduce byte for byte.
func MakeFactor(typ, secret, context string) group.Scalar {
	h := sha512.New()
	h.Write([]byte(typ))
	h.Write([]byte("|"))
	h.Write([]byte(secret))
	h.Write([]byte("|"))
	h.Write([]byte(context))
	var digest [64]byte
	copy(digest[:], h.Sum(nil))
	return group.ScalarFromHash(digest)
}

// makePseudonymisationFactor derives the scalar a server uses to reshuffle a pseudonym into its
// local form, scoped to one pseudonymisation context.
func makePseudonymisationFactor(secret, context string) group.Scalar {
	return MakeFactor("pseudonym", secret, context)
}

// makeDecryptionFactor derives the scalar a server uses to rekey a pseudonym into its local
// form, scoped to one decryption context.
func makeDecryptionFactor(secret, context string) group.Scalar {
	return MakeFactor("decryption", secret, context)
}

// ConvertToLocalPseudonym converts a global EncryptedPseudonym into the form local to one server,
// identified by its secret and the pair of contexts that scope decryption and pseudonymisation
// separately. Internally this is a single RKS transform with k = decryption factor and
// n = pseudonymisation factor.
func ConvertToLocalPseudonym(p EncryptedPseudonym, secret, decryptionContext, pseudonymisationContext string) (EncryptedPseudonym, error) {
	t := makeDecryptionFactor(secret, decryptionContext)
	u := makePseudonymisationFactor(secret, pseudonymisationContext)
	return elgamal.RKS(p, t, u)
}

// ConvertFromLocalPseudonym reverses ConvertToLocalPseudonym, given the same secret and
// contexts that produced the local form, by applying RKS with the inverse factors.
func ConvertFromLocalPseudonym(p EncryptedPseudonym, secret, decryptionContext, pseudonymisationContext string) (EncryptedPseudonym, error) {
	t := makeDecryptionFactor(secret, decryptionContext)
	u := makePseudonymisationFactor(secret, pseudonymisationContext)
	tInv, err := t.Invert()
	if err != nil {
		return elgamal.Ciphertext{}, err
	}
	uInv, err := u.Invert()
	if err != nil {
		return elgamal.Ciphertext{}, err
	}
	return elgamal.RKS(p, tInv, uInv)
}

// MakeLocalDecryptionKey derives the scalar a server uses to decrypt a pseudonym it has
// converted to its own local form, from the global secret key and the same secret/context pair
// used to rekey that pseudonym.
func MakeLocalDecryptionKey(sk GlobalSecretKey, secret, decryptionContext string) LocalDecryptionKey {
	t := makeDecryptionFactor(secret, decryptionContext)
	return t.Mul(sk)
}

// DecryptLocalPseudonym decrypts a locally-converted EncryptedPseudonym using the matching
// LocalDecryptionKey, recovering the underlying LocalPseudonym point.
func DecryptLocalPseudonym(p EncryptedPseudonym, k LocalDecryptionKey) (LocalPseudonym, error) {
	return elgamal.Decrypt(p, k)
}

// RerandomizeGlobal rerandomizes a global EncryptedPseudonym with fresh randomness, changing its
// wire encoding without altering the plaintext pseudonym or the key it decrypts under.
func RerandomizeGlobal(p EncryptedPseudonym) (EncryptedPseudonym, error) {
	return elgamal.Rerandomize(p, group.RandomScalar())
}

// RerandomizeLocal rerandomizes a locally-converted EncryptedPseudonym; identical to
// RerandomizeGlobal but named separately to mirror the two points in the pipeline where fresh
// randomness is injected.
func RerandomizeLocal(p EncryptedPseudonym) (EncryptedPseudonym, error) {
	return elgamal.Rerandomize(p, group.RandomScalar())
}
