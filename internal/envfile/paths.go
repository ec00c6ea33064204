package envfile

import (
	"path/filepath"
	"strings"
)

// EncryptedSuffix is appended to plaintext paths to name their artifacts.
const EncryptedSuffix = ".encrypted"

// DeriveOutputPath maps an input path to its counterpart for the given
// operation: encryption appends ".encrypted", decryption strips it.
//
//	.env                → .env.encrypted
//	.env.local          → .env.local.encrypted
//	.env.encrypted      → .env
//	.env.local.encrypted → .env.local
func DeriveOutputPath(inputPath string, encrypt bool) string {
	if encrypt {
		if strings.HasSuffix(inputPath, EncryptedSuffix) {
			// Already an artifact path; leave it alone.
			return inputPath
		}
		return inputPath + EncryptedSuffix
	}
	return strings.TrimSuffix(inputPath, EncryptedSuffix)
}

// ResolveEncryptInput picks the plaintext path for encryption: an explicit
// --input wins, then ".env.{env}" when an environment name is given, then
// plain ".env".
func ResolveEncryptInput(input, env string) string {
	if input != "" {
		return input
	}
	if env != "" {
		return ".env." + env
	}
	return ".env"
}

// ResolveEncryptOutput picks the artifact path for encryption. With an
// environment name the artifact is ".env.{env}.encrypted" next to the
// input; otherwise it derives from the input path.
func ResolveEncryptOutput(inputPath, env string) string {
	if env != "" {
		name := ".env." + env + EncryptedSuffix
		if dir := filepath.Dir(inputPath); dir != "." {
			return filepath.Join(dir, name)
		}
		return name
	}
	return DeriveOutputPath(inputPath, true)
}

// ResolveDecryptInput picks the artifact path for decryption.
func ResolveDecryptInput(input string) string {
	if input != "" {
		return input
	}
	return ".env" + EncryptedSuffix
}
