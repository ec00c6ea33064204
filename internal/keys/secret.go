package keys

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
)

// SecretPrefix is the conventional prefix on textual keys. It marks the key
// as generated material but the remainder is never base64-decoded:
// "base64:XXXX" and "XXXX" identify the same secret.
const SecretPrefix = "base64:"

// secretSize is the number of random bytes behind a generated secret.
const secretSize = 32

// Secret holds the user's key string as raw bytes. The buffer is owned by
// the Secret and is overwritten with zeros by Destroy. Callers must not
// retain slices obtained from Bytes past Destroy.
type Secret struct {
	b []byte
}

// ParseSecret normalizes a user-supplied key string into a Secret.
//
// Leading and trailing ASCII whitespace is trimmed and a literal "base64:"
// prefix is stripped. The remaining characters are stored verbatim — no
// base64 decoding takes place. An empty result fails with ErrInvalidKey.
func ParseSecret(input string) (*Secret, error) {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.TrimPrefix(trimmed, SecretPrefix)
	if trimmed == "" {
		return nil, apperrors.ErrInvalidKey
	}
	return &Secret{b: []byte(trimmed)}, nil
}

// GenerateSecret produces a fresh random secret. It draws 32 bytes from r
// and uses their standard base64 encoding as the secret text; that text is
// what subsequent decrypts must supply.
func GenerateSecret(r io.Reader) (*Secret, error) {
	raw := make([]byte, secretSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRandomSourceUnavailable, err)
	}
	text := base64.StdEncoding.EncodeToString(raw)
	Zero(raw)
	return &Secret{b: []byte(text)}, nil
}

// Bytes returns the secret's backing buffer without copying. The slice is
// only valid until Destroy is called.
func (s *Secret) Bytes() []byte {
	return s.b
}

// Text returns the secret in its user-displayable textual form. Only call
// this when the secret must be shown to the user, e.g. after generation.
func (s *Secret) Text() string {
	return string(s.b)
}

// Destroy zeroizes the secret's buffer. Idempotent.
func (s *Secret) Destroy() {
	Zero(s.b)
	s.b = nil
}

// String implements fmt.Stringer and never reveals the secret, so that the
// key cannot leak through log or debug formatting.
func (s *Secret) String() string {
	return "Secret(redacted)"
}

// GoString implements fmt.GoStringer; %#v is redacted like %v and %s.
func (s *Secret) GoString() string {
	return "Secret(redacted)"
}
