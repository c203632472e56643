// Package cipher is the repeating-key XOR stream used to wrap payloads.
// It is self-inverse and offers obfuscation only, not confidentiality.
package cipher

import "qlct/internal/errors"

// ErrEmptyKey is returned when the key has no bytes.
var ErrEmptyKey = errors.New("empty key")

// Encrypt XORs every byte of plaintext with key[i % len(key)].
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

// Decrypt is Encrypt: XOR with the same key undoes itself.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	return Encrypt(ciphertext, key)
}
