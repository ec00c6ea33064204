package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
)

const gcmTagSize = 16

// aesGCM implements AES-256-GCM. The tag is built in; associated data is
// always empty because the cipher identity travels out-of-band.
type aesGCM struct{}

func (aesGCM) Name() string { return CipherAES256GCM }

func (aesGCM) NonceSize() int { return 12 }

func (aesGCM) Overhead() int { return gcmTagSize }

func (g aesGCM) Seal(key, nonce, plaintext []byte) ([]byte, []byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, nil, fmt.Errorf("aes-gcm: nonce must be %d bytes, got %d", aead.NonceSize(), len(nonce))
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - gcmTagSize
	return sealed[:split], sealed[split:], nil
}

func (g aesGCM) Open(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}
	if len(nonce) != aead.NonceSize() || len(tag) != gcmTagSize {
		return nil, apperrors.ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keys.KeySize {
		return nil, fmt.Errorf("aes-gcm: key must be %d bytes, got %d", keys.KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes-gcm: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aes-gcm: %w", err)
	}
	return aead, nil
}
