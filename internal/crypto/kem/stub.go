package kem

import (
	"bytes"
	"slices"

	"qlct/internal/errors"
)

// Placeholder material returned by Stub. None of it is secret.
var (
	StubPublicKey    = []byte("stub-public-key")
	StubSecretKey    = []byte("stub-secret-key")
	StubCiphertext   = []byte("stub-ciphertext")
	StubSharedSecret = []byte("0123456789abcdef0123456789abcdef")
)

// Stub is a test double with fixed outputs. It provides no security and
// must only be selected explicitly.
type Stub struct{}

func (Stub) Name() string { return NameStub }

func (Stub) Keypair() ([]byte, []byte, error) {
	return slices.Clone(StubPublicKey), slices.Clone(StubSecretKey), nil
}

func (Stub) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	if len(publicKey) == 0 {
		return nil, nil, errors.New("empty public key")
	}
	return slices.Clone(StubCiphertext), slices.Clone(StubSharedSecret), nil
}

func (Stub) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if !bytes.Equal(secretKey, StubSecretKey) || !bytes.Equal(ciphertext, StubCiphertext) {
		return nil, errors.New("stub kem only decapsulates its own placeholder ciphertext")
	}
	return slices.Clone(StubSharedSecret), nil
}
