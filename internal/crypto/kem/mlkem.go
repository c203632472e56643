package kem

import (
	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"qlct/internal/errors"
)

// MLKEM768 is the NIST FIPS 203 ML-KEM-768 scheme.
type MLKEM768 struct {
	scheme circlkem.Scheme
}

// NewMLKEM768 returns the production variant.
func NewMLKEM768() *MLKEM768 {
	return &MLKEM768{scheme: mlkem768.Scheme()}
}

func (m *MLKEM768) Name() string { return NameMLKEM768 }

func (m *MLKEM768) Keypair() ([]byte, []byte, error) {
	pk, sk, err := m.scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, errors.Wrap(err, "generate ml-kem-768 key pair")
	}
	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal public key")
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal secret key")
	}
	return pkBytes, skBytes, nil
}

func (m *MLKEM768) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	pk, err := m.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unmarshal public key (%d bytes, want %d)",
			len(publicKey), m.scheme.PublicKeySize())
	}
	ct, ss, err := m.scheme.Encapsulate(pk)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encapsulate")
	}
	return ct, ss, nil
}

func (m *MLKEM768) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	sk, err := m.scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, errors.Wrapf(err, "unmarshal secret key (%d bytes, want %d)",
			len(secretKey), m.scheme.PrivateKeySize())
	}
	if len(ciphertext) != m.scheme.CiphertextSize() {
		return nil, errors.Newf("ciphertext is %d bytes, want %d", len(ciphertext), m.scheme.CiphertextSize())
	}
	ss, err := m.scheme.Decapsulate(sk, ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "decapsulate")
	}
	return ss, nil
}
