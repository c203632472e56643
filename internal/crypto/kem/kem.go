// Package kem provides key encapsulation for the payload pipeline.
//
// Two variants exist and are selected by name, never by what happens to be
// importable: the production ML-KEM-768 scheme and a Stub that returns fixed
// placeholder bytes for tests and offline demos.
package kem

import (
	"strings"

	"qlct/internal/errors"
)

// Variant names accepted by New.
const (
	NameMLKEM768 = "mlkem768"
	NameStub     = "stub"
)

// ErrUnknownVariant is returned by New for an unrecognised name.
var ErrUnknownVariant = errors.New("unknown kem variant")

// KEM is a key-encapsulation mechanism working on serialized keys.
type KEM interface {
	// Name identifies the variant.
	Name() string
	// Keypair generates a fresh key pair.
	Keypair() (publicKey, secretKey []byte, err error)
	// Encapsulate derives a shared secret and its ciphertext for publicKey.
	Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error)
	// Decapsulate recovers the shared secret from ciphertext.
	Decapsulate(secretKey, ciphertext []byte) (sharedSecret []byte, err error)
}

// New returns the variant registered under name.
func New(name string) (KEM, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameMLKEM768:
		return NewMLKEM768(), nil
	case NameStub:
		return Stub{}, nil
	default:
		return nil, errors.WithHintf(
			errors.Wrapf(ErrUnknownVariant, "%q", name),
			"use %q or %q", NameMLKEM768, NameStub)
	}
}
