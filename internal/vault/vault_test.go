package vault

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
	"github.com/envcrypt/envcrypt/internal/keys"
)

func mustSecret(t *testing.T, text string) *keys.Secret {
	t.Helper()
	s, err := keys.ParseSecret(text)
	if err != nil {
		t.Fatalf("ParseSecret(%q) failed: %v", text, err)
	}
	return s
}

// counterReader is a deterministic random source for reproducing artifacts.
type counterReader struct {
	next byte
}

func (r *counterReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

func TestSealOpen_RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 15, 16, 17, 31, 1024, 1 << 20}

	for _, name := range SupportedCiphers() {
		for _, size := range sizes {
			plaintext := make([]byte, size)
			if _, err := rand.Read(plaintext); err != nil {
				t.Fatalf("Failed to generate plaintext: %v", err)
			}

			secret := mustSecret(t, "hunter2")
			artifact, err := Seal(name, secret, plaintext)
			if err != nil {
				t.Fatalf("%s: Seal of %d bytes failed: %v", name, size, err)
			}

			got, err := Open(name, secret, artifact)
			if err != nil {
				t.Fatalf("%s: Open of %d bytes failed: %v", name, size, err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Errorf("%s: round trip of %d bytes did not return the original plaintext", name, size)
			}
			secret.Destroy()
		}
	}
}

func TestSealOpen_EnvFileScenario(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	plaintext := []byte("API_KEY=secret123\n")
	artifact, err := Seal(CipherAES256CBC, secret, plaintext)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	got, err := Open(CipherAES256CBC, secret, artifact)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if string(got) != "API_KEY=secret123\n" {
		t.Errorf("Expected original env content, got %q", got)
	}
}

func TestSeal_FrameLengths(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	tests := []struct {
		cipher    string
		plaintext int
		frame     int
	}{
		// CBC: salt(16) + iv(16) + padded ciphertext + hmac(32).
		{CipherAES256CBC, 0, 16 + 16 + 16 + 32},
		{CipherAES256CBC, 15, 16 + 16 + 16 + 32},
		{CipherAES256CBC, 16, 16 + 16 + 32 + 32},
		// AEAD: salt(16) + nonce(12) + plaintext-length ciphertext + tag(16).
		{CipherAES256GCM, 0, 44},
		{CipherAES256GCM, 10, 16 + 12 + 10 + 16},
		{CipherChaCha20Poly1305, 0, 44},
		{CipherChaCha20Poly1305, 10, 16 + 12 + 10 + 16},
	}

	for _, tt := range tests {
		artifact, err := Seal(tt.cipher, secret, make([]byte, tt.plaintext))
		if err != nil {
			t.Fatalf("%s: Seal failed: %v", tt.cipher, err)
		}
		decoded, err := base64.StdEncoding.DecodeString(string(artifact))
		if err != nil {
			t.Fatalf("%s: artifact is not standard base64: %v", tt.cipher, err)
		}
		if len(decoded) != tt.frame {
			t.Errorf("%s: %d-byte plaintext produced %d-byte frame, want %d",
				tt.cipher, tt.plaintext, len(decoded), tt.frame)
		}
	}
}

func TestSeal_ArtifactsDiffer(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	plaintext := []byte("API_KEY=secret123\n")
	for _, name := range SupportedCiphers() {
		a, err := Seal(name, secret, plaintext)
		if err != nil {
			t.Fatalf("%s: first Seal failed: %v", name, err)
		}
		b, err := Seal(name, secret, plaintext)
		if err != nil {
			t.Fatalf("%s: second Seal failed: %v", name, err)
		}
		if bytes.Equal(a, b) {
			t.Errorf("%s: two seals of identical input produced identical artifacts", name)
		}

		// Salt and nonce fields specifically must differ.
		da, _ := base64.StdEncoding.DecodeString(string(a))
		db, _ := base64.StdEncoding.DecodeString(string(b))
		cipher, _ := ForName(name)
		head := keys.SaltSize + cipher.NonceSize()
		if bytes.Equal(da[:head], db[:head]) {
			t.Errorf("%s: salt and nonce repeated across seals", name)
		}
	}
}

func TestOpen_WrongKey(t *testing.T) {
	for _, name := range SupportedCiphers() {
		right := mustSecret(t, "right")
		artifact, err := Seal(name, right, []byte("x"))
		right.Destroy()
		if err != nil {
			t.Fatalf("%s: Seal failed: %v", name, err)
		}

		wrong := mustSecret(t, "wrong")
		plaintext, err := Open(name, wrong, artifact)
		wrong.Destroy()
		if !errors.Is(err, apperrors.ErrAuthenticationFailed) {
			t.Errorf("%s: expected ErrAuthenticationFailed with wrong key, got %v", name, err)
		}
		if plaintext != nil {
			t.Errorf("%s: partial plaintext returned on authentication failure", name)
		}
	}
}

func TestOpen_TamperDetection(t *testing.T) {
	if testing.Short() {
		t.Skip("bit-flip sweep re-derives the key per position")
	}

	for _, name := range SupportedCiphers() {
		secret := mustSecret(t, "hunter2")
		artifact, err := Seal(name, secret, []byte("API_KEY=x"))
		if err != nil {
			t.Fatalf("%s: Seal failed: %v", name, err)
		}

		frame, err := base64.StdEncoding.DecodeString(string(artifact))
		if err != nil {
			t.Fatalf("%s: decode failed: %v", name, err)
		}

		// Flip one bit in every byte of the decoded frame: salt, nonce,
		// ciphertext, and tag must all be integrity-bound.
		for i := range frame {
			tampered := append([]byte(nil), frame...)
			tampered[i] ^= 0x01
			reencoded := []byte(base64.StdEncoding.EncodeToString(tampered))

			plaintext, err := Open(name, secret, reencoded)
			if !errors.Is(err, apperrors.ErrAuthenticationFailed) && !errors.Is(err, apperrors.ErrMalformedArtifact) {
				t.Fatalf("%s: bit flip at byte %d not detected, err=%v", name, i, err)
			}
			if plaintext != nil {
				t.Fatalf("%s: plaintext returned for tampered frame (byte %d)", name, i)
			}
		}
		secret.Destroy()
	}
}

func TestOpen_FlipLastFrameByte(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	artifact, err := Seal(CipherChaCha20Poly1305, secret, []byte("DB_PASSWORD=swordfish"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	frame, _ := base64.StdEncoding.DecodeString(string(artifact))
	frame[len(frame)-1] ^= 0x01
	tampered := []byte(base64.StdEncoding.EncodeToString(frame))

	if _, err := Open(CipherChaCha20Poly1305, secret, tampered); !errors.Is(err, apperrors.ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestOpen_NotBase64(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	_, err := Open(CipherAES256CBC, secret, []byte("not base64!!!"))
	if !errors.Is(err, apperrors.ErrMalformedArtifact) {
		t.Errorf("Expected ErrMalformedArtifact, got %v", err)
	}
}

func TestOpen_ShortFrame(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	short := []byte(base64.StdEncoding.EncodeToString([]byte("shorter-than-64-bytes")))

	for _, name := range SupportedCiphers() {
		_, err := Open(name, secret, short)
		if !errors.Is(err, apperrors.ErrMalformedArtifact) {
			t.Errorf("%s: expected ErrMalformedArtifact for short frame, got %v", name, err)
		}
	}

	// One byte short of the CBC minimum (16+16+32 = 64).
	almost := []byte(base64.StdEncoding.EncodeToString(make([]byte, 63)))
	if _, err := Open(CipherAES256CBC, secret, almost); !errors.Is(err, apperrors.ErrMalformedArtifact) {
		t.Errorf("Expected ErrMalformedArtifact for 63-byte frame, got %v", err)
	}
}

func TestSealOpen_UnknownCipher(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	if _, err := Seal("AES-128-CBC", secret, []byte("x")); !errors.Is(err, apperrors.ErrUnknownCipher) {
		t.Errorf("Seal: expected ErrUnknownCipher, got %v", err)
	}
	if _, err := Open("ROT13", secret, []byte("aGk=")); !errors.Is(err, apperrors.ErrUnknownCipher) {
		t.Errorf("Open: expected ErrUnknownCipher, got %v", err)
	}
}

func TestCodec_DeterministicRand(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	plaintext := []byte("API_KEY=secret123\n")
	for _, name := range SupportedCiphers() {
		a, err := NewCodecWithRand(&counterReader{}).Seal(name, secret, plaintext)
		if err != nil {
			t.Fatalf("%s: Seal failed: %v", name, err)
		}
		b, err := NewCodecWithRand(&counterReader{}).Seal(name, secret, plaintext)
		if err != nil {
			t.Fatalf("%s: Seal failed: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s: identical random streams produced different artifacts", name)
		}

		if got, err := Open(name, secret, a); err != nil || !bytes.Equal(got, plaintext) {
			t.Errorf("%s: default codec could not open deterministic artifact: %v", name, err)
		}
	}
}

func TestSeal_RandFailure(t *testing.T) {
	secret := mustSecret(t, "hunter2")
	defer secret.Destroy()

	codec := NewCodecWithRand(bytes.NewReader(nil))
	_, err := codec.Seal(CipherAES256GCM, secret, []byte("x"))
	if !errors.Is(err, apperrors.ErrRandomSourceUnavailable) {
		t.Errorf("Expected ErrRandomSourceUnavailable, got %v", err)
	}
}
