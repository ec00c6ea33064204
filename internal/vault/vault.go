package vault

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
)

// Codec seals plaintext into base64 artifacts and opens them again. The
// zero value is not usable; construct with NewCodec or NewCodecWithRand.
//
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	rand io.Reader
}

// NewCodec returns a Codec backed by the operating system's random source.
func NewCodec() *Codec {
	return &Codec{rand: rand.Reader}
}

// NewCodecWithRand returns a Codec that draws salts and nonces from r.
// Tests use a deterministic reader to reproduce artifacts byte for byte.
func NewCodecWithRand(r io.Reader) *Codec {
	return &Codec{rand: r}
}

// Seal encrypts plaintext under the named cipher and returns the artifact:
// standard base64 (with padding) of salt ‖ nonce ‖ ciphertext ‖ tag.
//
// Each call draws a fresh 16-byte salt and a fresh nonce of the cipher's
// size, so sealing the same input twice produces different artifacts. The
// derived key is zeroized before Seal returns, on every path.
func (c *Codec) Seal(cipherName string, secret *keys.Secret, plaintext []byte) ([]byte, error) {
	cipher, err := ForName(cipherName)
	if err != nil {
		return nil, err
	}

	salt, err := c.randomBytes(keys.SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := c.randomBytes(cipher.NonceSize())
	if err != nil {
		return nil, err
	}

	key := keys.Derive(secret, salt)
	defer key.Destroy()

	ciphertext, tag, err := cipher.Seal(key.Bytes(), nonce, plaintext)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext)+len(tag))
	frame = append(frame, salt...)
	frame = append(frame, nonce...)
	frame = append(frame, ciphertext...)
	frame = append(frame, tag...)

	artifact := make([]byte, base64.StdEncoding.EncodedLen(len(frame)))
	base64.StdEncoding.Encode(artifact, frame)
	return artifact, nil
}

// Open decodes and decrypts an artifact produced by Seal with the same
// cipher and secret. It fails with ErrMalformedArtifact when the payload is
// not valid base64 or is too short to hold a complete frame, and with
// ErrAuthenticationFailed when the tag does not verify. No partial
// plaintext is ever returned; the derived key is zeroized before Open
// returns, on every path.
func (c *Codec) Open(cipherName string, secret *keys.Secret, artifact []byte) ([]byte, error) {
	cipher, err := ForName(cipherName)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, base64.StdEncoding.DecodedLen(len(artifact)))
	n, err := base64.StdEncoding.Decode(frame, artifact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedArtifact, err)
	}
	frame = frame[:n]

	minLen := keys.SaltSize + cipher.NonceSize() + cipher.Overhead()
	if len(frame) < minLen {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d for %s",
			apperrors.ErrMalformedArtifact, len(frame), minLen, cipher.Name())
	}

	salt := frame[:keys.SaltSize]
	nonce := frame[keys.SaltSize : keys.SaltSize+cipher.NonceSize()]
	tag := frame[len(frame)-cipher.Overhead():]
	ciphertext := frame[keys.SaltSize+cipher.NonceSize() : len(frame)-cipher.Overhead()]

	key := keys.Derive(secret, salt)
	defer key.Destroy()

	return cipher.Open(key.Bytes(), nonce, ciphertext, tag)
}

func (c *Codec) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.rand, b); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRandomSourceUnavailable, err)
	}
	return b, nil
}

var defaultCodec = NewCodec()

// Seal encrypts with the process-default random source.
func Seal(cipherName string, secret *keys.Secret, plaintext []byte) ([]byte, error) {
	return defaultCodec.Seal(cipherName, secret, plaintext)
}

// Open decrypts an artifact produced by Seal.
func Open(cipherName string, secret *keys.Secret, artifact []byte) ([]byte, error) {
	return defaultCodec.Open(cipherName, secret, artifact)
}
