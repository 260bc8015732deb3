// Package kdf derives server subkeys from a single master secret using Blake2b, the same
// primitive named for this role in the reference key-derivation interface. It is strictly a
// derivation primitive: it has no opinion on how a master secret is stored, rotated, or handed
// out to servers, which remains the caller's concern.
package kdf

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// MasterSecretSize is the length in bytes of a master secret.
const MasterSecretSize = 32

// GenerateMasterSecret returns a fresh uniformly random master secret.
func GenerateMasterSecret() ([MasterSecretSize]byte, error) {
	var secret [MasterSecretSize]byte
	if _, err := rand.Read(secret[:]); err != nil {
		return [MasterSecretSize]byte{}, err
	}
	return secret, nil
}

// DeriveSubkey deterministically derives an outLen-byte subkey from master, domain-separated by
// subkeyID and context. The same (master, subkeyID, context) always yields the same output;
// varying any one of them yields an independent-looking key.
//
// Internally this keys Blake2b with master and hashes subkeyID, context, and a block counter,
// expanding past Blake2b's 64-byte digest size in counter mode when outLen requires it.
func DeriveSubkey(master [MasterSecretSize]byte, subkeyID uint64, context string, outLen int) ([]byte, error) {
	out := make([]byte, 0, outLen)

	var idBuf [8]byte
	binary.LittleEndian.PutUint64(idBuf[:], subkeyID)

	for counter := uint32(0); len(out) < outLen; counter++ {
		h, err := blake2b.New512(master[:])
		if err != nil {
			return nil, err
		}
		h.Write(idBuf[:])
		h.Write([]byte(context))

		var ctrBuf [4]byte
		binary.LittleEndian.PutUint32(ctrBuf[:], counter)
		h.Write(ctrBuf[:])

		block := h.Sum(nil)
		need := outLen - len(out)
		if need > len(block) {
			need = len(block)
		}
		out = append(out, block[:need]...)
	}

	return out, nil
}
