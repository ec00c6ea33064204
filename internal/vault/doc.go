// Package vault provides the authenticated-encryption engine for envcrypt.
//
// This package implements the on-disk artifact format: a pluggable cipher
// suite, and the container codec that binds key-derivation salt, nonce,
// ciphertext, and authentication tag into a single base64 blob.
//
// # Artifact format
//
// An artifact is the standard base64 encoding (RFC 4648, '=' padding) of
//
//	salt (16) ‖ nonce ‖ ciphertext ‖ tag
//
// where the nonce and tag sizes depend on the cipher:
//
//	AES-256-CBC        16-byte IV     32-byte HMAC-SHA256 tag
//	AES-256-GCM        12-byte nonce  16-byte tag
//	CHACHA20-POLY1305  12-byte nonce  16-byte tag
//
// There is no framing header. The cipher identity is not recorded in the
// artifact; callers supply it out-of-band on both Seal and Open.
//
// # Cipher suite
//
// Three interchangeable constructions sit behind the Cipher interface:
//
//   - AES-256-CBC with HMAC-SHA256 in encrypt-then-MAC order. The MAC covers
//     IV ‖ ciphertext and is keyed with the same 32-byte derived key as the
//     encryption (a compatibility requirement of the format). The MAC is
//     verified in constant time before any decryption, and padding failures
//     are reported as authentication failures.
//   - AES-256-GCM and ChaCha20-Poly1305, both with empty associated data.
//
// # Security Considerations
//
// Every Seal draws a fresh random salt and nonce, so encrypting the same
// plaintext twice produces unrelated artifacts. The PBKDF2-derived working
// key lives exactly as long as one Seal or Open call and is zeroized in a
// deferred epilogue, covering error paths. Authentication failures never
// yield partial plaintext.
//
// Seal and Open are single-shot: the whole plaintext is held in memory.
// Environment files are small, so there is no streaming mode.
package vault
