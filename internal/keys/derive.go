package keys

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Iterations is the fixed PBKDF2 iteration count. Changing it is a breaking
// format change: artifacts written with a different count cannot be opened.
const Iterations = 100_000

// KeySize is the derived key length in bytes (256 bits).
const KeySize = 32

// SaltSize is the PBKDF2 salt length in bytes. One fresh salt per artifact.
const SaltSize = 16

// DerivedKey is a 32-byte working key produced by Derive. It is consumed by
// exactly one seal or open operation and must be destroyed immediately after.
type DerivedKey struct {
	b []byte
}

// Derive stretches a secret and a per-artifact salt into a 32-byte working
// key using PBKDF2-HMAC-SHA256 with the fixed iteration count.
func Derive(secret *Secret, salt []byte) *DerivedKey {
	return &DerivedKey{b: pbkdf2.Key(secret.Bytes(), salt, Iterations, KeySize, sha256.New)}
}

// Bytes returns the key's backing buffer without copying. The slice is only
// valid until Destroy is called.
func (k *DerivedKey) Bytes() []byte {
	return k.b
}

// Destroy zeroizes the key's buffer. Idempotent.
func (k *DerivedKey) Destroy() {
	Zero(k.b)
	k.b = nil
}

// String implements fmt.Stringer and never reveals key material.
func (k *DerivedKey) String() string {
	return "DerivedKey(redacted)"
}

// GoString implements fmt.GoStringer; %#v is redacted like %v and %s.
func (k *DerivedKey) GoString() string {
	return "DerivedKey(redacted)"
}
