package vault

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
)

// chaCha20Poly1305 implements the IETF ChaCha20-Poly1305 construction.
// Like GCM, the tag is built in and associated data is always empty.
type chaCha20Poly1305 struct{}

func (chaCha20Poly1305) Name() string { return CipherChaCha20Poly1305 }

func (chaCha20Poly1305) NonceSize() int { return chacha20poly1305.NonceSize }

func (chaCha20Poly1305) Overhead() int { return chacha20poly1305.Overhead }

func (c chaCha20Poly1305) Seal(key, nonce, plaintext []byte) ([]byte, []byte, error) {
	if len(key) != keys.KeySize {
		return nil, nil, fmt.Errorf("chacha20-poly1305: key must be %d bytes, got %d", keys.KeySize, len(key))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, fmt.Errorf("chacha20-poly1305: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, nil, fmt.Errorf("chacha20-poly1305: nonce must be %d bytes, got %d", aead.NonceSize(), len(nonce))
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - aead.Overhead()
	return sealed[:split], sealed[split:], nil
}

func (c chaCha20Poly1305) Open(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(key) != keys.KeySize {
		return nil, apperrors.ErrAuthenticationFailed
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}
	if len(nonce) != aead.NonceSize() || len(tag) != aead.Overhead() {
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
