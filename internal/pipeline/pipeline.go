// Package pipeline wraps JSON payloads: a KEM shared secret keys the XOR
// stream, and the envelope carries the hex ciphertext plus key metadata.
package pipeline

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"go.uber.org/zap"

	"qlct/internal/crypto/cipher"
	"qlct/internal/crypto/kem"
	"qlct/internal/errors"
)

// DefaultKeyLen is how many shared-secret bytes key the stream.
const DefaultKeyLen = 16

// ErrMissingKey is returned by Restore when no key is supplied.
var ErrMissingKey = errors.New("missing key")

// Envelope is the protected form of a payload. KeyHex is included so the
// demo round trip works without a decapsulating peer.
type Envelope struct {
	CiphertextHex    string `json:"ciphertext_hex"`
	KEMCiphertextLen int    `json:"kem_ct_len"`
	KeyLen           int    `json:"key_len"`
	KeyHex           string `json:"key"`
	KEM              string `json:"kem"`
}

// Pipeline protects and restores payloads with one KEM variant.
type Pipeline struct {
	kem    kem.KEM
	keyLen int
	log    *zap.SugaredLogger
}

// New returns a Pipeline. keyLen 0 means DefaultKeyLen; a nil logger disables logging.
func New(k kem.KEM, keyLen int, log *zap.SugaredLogger) (*Pipeline, error) {
	if k == nil {
		return nil, errors.New("nil kem")
	}
	if keyLen == 0 {
		keyLen = DefaultKeyLen
	}
	if keyLen < 0 {
		return nil, errors.Newf("key length %d must be positive", keyLen)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{kem: k, keyLen: keyLen, log: log}, nil
}

// Protect serializes payload to JSON and encrypts it under a fresh shared secret.
func (p *Pipeline) Protect(payload any) (*Envelope, error) {
	pk, _, err := p.kem.Keypair()
	if err != nil {
		return nil, errors.Wrap(err, "kem keypair")
	}
	ct, ss, err := p.kem.Encapsulate(pk)
	if err != nil {
		return nil, errors.Wrap(err, "kem encapsulate")
	}
	if len(ss) < p.keyLen {
		return nil, errors.Newf("shared secret is %d bytes, need %d", len(ss), p.keyLen)
	}
	key := ss[:p.keyLen]

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}
	ctext, err := cipher.Encrypt(data, key)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt payload")
	}

	p.log.Debugw("Protected payload", "kem", p.kem.Name(), "bytes", len(data), "kem_ct_len", len(ct))
	return &Envelope{
		CiphertextHex:    hex.EncodeToString(ctext),
		KEMCiphertextLen: len(ct),
		KeyLen:           len(key),
		KeyHex:           hex.EncodeToString(key),
		KEM:              p.kem.Name(),
	}, nil
}

// Restore decrypts ciphertextHex with keyHex and decodes the JSON into out.
// Numbers decoded into interface values arrive as json.Number, so integers
// beyond 2^53 survive the round trip.
func Restore(ciphertextHex, keyHex string, out any) error {
	if keyHex == "" {
		return errors.WithHint(ErrMissingKey, "pass the key from the envelope")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return errors.Wrap(err, "decode key hex")
	}
	ctext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return errors.Wrap(err, "decode ciphertext hex")
	}
	data, err := cipher.Decrypt(ctext, key)
	if err != nil {
		return errors.Wrap(err, "decrypt payload")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return errors.Wrap(err, "unmarshal payload")
	}
	return nil
}

// RestoreEnvelope is Restore on an Envelope's own fields.
func RestoreEnvelope(env *Envelope, out any) error {
	return Restore(env.CiphertextHex, env.KeyHex, out)
}
