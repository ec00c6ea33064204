// Package keys provides key material handling for envcrypt.
//
// This package covers the full lifecycle of the user's secret: parsing the
// textual key (with the conventional "base64:" prefix), generating fresh
// random keys, and stretching a secret into a 32-byte working key with
// PBKDF2-HMAC-SHA256.
//
// # Key Derivation
//
// Keys are derived using PBKDF2-HMAC-SHA256 with 100,000 iterations and a
// 16-byte random salt. The salt is stored in the encrypted artifact so
// decryption can re-derive the same key. The iteration count is fixed and
// never negotiated.
//
// # The base64: prefix
//
// Generated keys are displayed as "base64:<text>". On input the prefix is
// stripped but the remainder is deliberately NOT decoded — the text itself
// is the secret. This mirrors the Laravel env:encrypt convention and keeps
// artifacts interoperable with other implementations.
//
// # Zeroization
//
// Secret and DerivedKey own their buffers and overwrite them with zeros on
// Destroy. Go offers no guaranteed destructor, so callers pair acquisition
// with a deferred Destroy; the overwrite uses runtime.KeepAlive to survive
// compiler optimization. Neither type reveals its contents through fmt
// verbs.
package keys
