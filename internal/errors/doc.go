// Package errors defines sentinel errors used throughout envcrypt.
//
// Errors are organized by category: key errors, cryptographic errors, and
// file errors. Use errors.Is to check for specific error conditions:
//
//	if errors.Is(err, errors.ErrAuthenticationFailed) {
//	    // wrong key or tampered payload
//	}
//
// The cryptographic taxonomy is deliberately flat and coarse. In particular,
// CBC padding failures surface as ErrAuthenticationFailed rather than as a
// distinct padding error, so callers cannot be used as a padding oracle.
package errors
