package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
)

// aesCBC implements AES-256-CBC with HMAC-SHA256 in encrypt-then-MAC order.
//
// The same 32-byte derived key drives both AES and the HMAC. Independent
// subkeys would be preferable, but the single-key construction is what the
// on-disk format requires for interoperability.
type aesCBC struct{}

func (aesCBC) Name() string { return CipherAES256CBC }

// NonceSize returns the AES block size; CBC uses a full-block IV.
func (aesCBC) NonceSize() int { return aes.BlockSize }

// Overhead returns the HMAC-SHA256 tag size.
func (aesCBC) Overhead() int { return sha256.Size }

func (c aesCBC) Seal(key, nonce, plaintext []byte) ([]byte, []byte, error) {
	if len(key) != keys.KeySize {
		return nil, nil, fmt.Errorf("aes-cbc: key must be %d bytes, got %d", keys.KeySize, len(key))
	}
	if len(nonce) != c.NonceSize() {
		return nil, nil, fmt.Errorf("aes-cbc: iv must be %d bytes, got %d", c.NonceSize(), len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("aes-cbc: %w", err)
	}

	// The padded buffer holds plaintext; zeroize it once encrypted.
	padded := pkcs7Pad(append([]byte(nil), plaintext...), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, nonce).CryptBlocks(ciphertext, padded)
	keys.Zero(padded)

	return ciphertext, c.mac(key, nonce, ciphertext), nil
}

func (c aesCBC) Open(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(key) != keys.KeySize || len(nonce) != c.NonceSize() {
		return nil, apperrors.ErrAuthenticationFailed
	}

	// Verify the MAC before touching the ciphertext. The comparison is
	// constant time, and every failure from here on is reported as the same
	// authentication error so that padding problems are indistinguishable
	// from MAC mismatches.
	expected := c.mac(key, nonce, ciphertext)
	if subtle.ConstantTimeCompare(expected, tag) != 1 {
		return nil, apperrors.ErrAuthenticationFailed
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, apperrors.ErrAuthenticationFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, nonce).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		keys.Zero(padded)
		return nil, apperrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// mac computes HMAC-SHA256 over IV ‖ ciphertext.
func (aesCBC) mac(key, iv, ciphertext []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(iv)
	h.Write(ciphertext)
	return h.Sum(nil)
}
