package vault

import (
	"fmt"
	"strings"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
)

// Supported cipher names. Matching is case-insensitive after trimming.
const (
	CipherAES256CBC        = "AES-256-CBC"
	CipherAES256GCM        = "AES-256-GCM"
	CipherChaCha20Poly1305 = "CHACHA20-POLY1305"
)

// Cipher is the contract shared by the three authenticated-encryption
// constructions. Implementations are stateless and safe for concurrent use.
//
// Seal and Open never retain key, nonce, or plaintext slices. Open returns
// ErrAuthenticationFailed when the tag does not verify; no plaintext is ever
// returned in that case.
type Cipher interface {
	// Name returns the canonical cipher identifier.
	Name() string

	// NonceSize returns the nonce (or IV) length in bytes.
	NonceSize() int

	// Overhead returns the authentication tag length in bytes.
	Overhead() int

	// Seal encrypts and authenticates plaintext with the given 32-byte key
	// and nonce, returning ciphertext and tag separately.
	Seal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error)

	// Open verifies the tag and decrypts. The tag is always checked before
	// any plaintext is produced.
	Open(key, nonce, ciphertext, tag []byte) ([]byte, error)
}

// SupportedCiphers returns the cipher names accepted by ForName, default first.
func SupportedCiphers() []string {
	return []string{CipherAES256CBC, CipherAES256GCM, CipherChaCha20Poly1305}
}

// ForName resolves a cipher name to its implementation. Names are trimmed
// and compared case-insensitively. Unknown names fail with ErrUnknownCipher
// before any other work.
func ForName(name string) (Cipher, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case CipherAES256CBC:
		return aesCBC{}, nil
	case CipherAES256GCM:
		return aesGCM{}, nil
	case CipherChaCha20Poly1305:
		return chaCha20Poly1305{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			apperrors.ErrUnknownCipher, name, strings.Join(SupportedCiphers(), ", "))
	}
}
