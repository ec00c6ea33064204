// Package utils provides terminal interaction and formatting helpers.
//
// Passphrase input uses golang.org/x/term so that keys are never echoed to
// the terminal. Callers check IsTerminal before prompting and fall back to
// non-interactive behavior when stdin is not a TTY.
package utils
