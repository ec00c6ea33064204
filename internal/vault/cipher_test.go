package vault

import (
	"errors"
	"testing"

	apperrors "github.com/envcrypt/envcrypt/internal/errors"
)

func TestForName_CanonicalNames(t *testing.T) {
	for _, name := range SupportedCiphers() {
		c, err := ForName(name)
		if err != nil {
			t.Fatalf("ForName(%q) failed: %v", name, err)
		}
		if c.Name() != name {
			t.Errorf("ForName(%q).Name() = %q", name, c.Name())
		}
	}
}

func TestForName_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"aes-256-cbc", CipherAES256CBC},
		{"Aes-256-Gcm", CipherAES256GCM},
		{"chacha20-poly1305", CipherChaCha20Poly1305},
		{"  AES-256-CBC  ", CipherAES256CBC},
		{"\tchacha20-poly1305\n", CipherChaCha20Poly1305},
	}

	for _, tt := range tests {
		c, err := ForName(tt.input)
		if err != nil {
			t.Fatalf("ForName(%q) failed: %v", tt.input, err)
		}
		if c.Name() != tt.want {
			t.Errorf("ForName(%q).Name() = %q, want %q", tt.input, c.Name(), tt.want)
		}
	}
}

func TestForName_Unknown(t *testing.T) {
	for _, name := range []string{"", "AES-128-CBC", "CHACHA20POLY1305", "XSalsa20", "aes256gcm"} {
		_, err := ForName(name)
		if !errors.Is(err, apperrors.ErrUnknownCipher) {
			t.Errorf("ForName(%q): expected ErrUnknownCipher, got %v", name, err)
		}
	}
}

func TestCipherParameters(t *testing.T) {
	tests := []struct {
		name      string
		nonceSize int
		overhead  int
	}{
		{CipherAES256CBC, 16, 32},
		{CipherAES256GCM, 12, 16},
		{CipherChaCha20Poly1305, 12, 16},
	}

	for _, tt := range tests {
		c, err := ForName(tt.name)
		if err != nil {
			t.Fatalf("ForName(%q) failed: %v", tt.name, err)
		}
		if c.NonceSize() != tt.nonceSize {
			t.Errorf("%s: NonceSize() = %d, want %d", tt.name, c.NonceSize(), tt.nonceSize)
		}
		if c.Overhead() != tt.overhead {
			t.Errorf("%s: Overhead() = %d, want %d", tt.name, c.Overhead(), tt.overhead)
		}
	}
}

func TestSupportedCiphers_DefaultFirst(t *testing.T) {
	ciphers := SupportedCiphers()
	if len(ciphers) != 3 {
		t.Fatalf("Expected 3 supported ciphers, got %d", len(ciphers))
	}
	if ciphers[0] != CipherAES256CBC {
		t.Errorf("Default cipher should be first, got %q", ciphers[0])
	}
}
