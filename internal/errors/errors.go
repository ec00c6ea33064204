package errors

import "errors"

// Key errors indicate problems with the user-supplied secret.
var (
	// ErrInvalidKey indicates the secret is empty after trimming and prefix stripping.
	ErrInvalidKey = errors.New("encryption key must not be empty")

	// ErrKeyRequired indicates no key was supplied and prompting is disabled.
	ErrKeyRequired = errors.New("decryption key is required")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrUnknownCipher indicates the cipher name does not match any supported variant.
	ErrUnknownCipher = errors.New("unsupported cipher")

	// ErrMalformedArtifact indicates the encrypted payload is not valid base64 or is
	// too short to contain a complete frame for the selected cipher.
	ErrMalformedArtifact = errors.New("encrypted payload is malformed")

	// ErrAuthenticationFailed indicates the MAC or AEAD tag did not verify.
	// The payload has been tampered with, or the wrong key was supplied.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrRandomSourceUnavailable indicates the system random source failed during encryption.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
)

// File errors indicate issues with input or output files.
var (
	// ErrFileNotFound indicates the input file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrOutputExists indicates the output file already exists.
	ErrOutputExists = errors.New("output file already exists")
)
