package vault

import (
	"bytes"
	"fmt"
)

// pkcs7Pad appends PKCS#7 padding to src so that its length is a multiple of
// blockSize. If len(src) is already a multiple of blockSize, a full extra
// block of padding is appended so that the padding can always be
// unambiguously removed.
func pkcs7Pad(src []byte, blockSize int) []byte {
	padding := blockSize - (len(src) % blockSize)
	return append(src, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad removes PKCS#7 padding from src and returns the original data.
//
// This function is only called after HMAC verification succeeds, so it is
// not exposed to padding-oracle attacks; the caller folds any error it
// returns into ErrAuthenticationFailed regardless.
func pkcs7Unpad(src []byte, blockSize int) ([]byte, error) {
	length := len(src)
	if length == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if length%blockSize != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of block size %d", length, blockSize)
	}

	padding := int(src[length-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("invalid padding byte value %d", padding)
	}
	if padding > length {
		return nil, fmt.Errorf("padding length %d exceeds input length %d", padding, length)
	}

	// Verify every padding byte.
	for i := length - padding; i < length; i++ {
		if src[i] != byte(padding) {
			return nil, fmt.Errorf("malformed padding at byte %d", i)
		}
	}
	return src[:length-padding], nil
}
