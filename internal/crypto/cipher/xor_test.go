package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qlct/internal/errors"
)

func TestEncryptKnownVector(t *testing.T) {
	ct, err := Encrypt([]byte("Hello"), []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, []byte{'H' ^ 1, 'e' ^ 2, 'l' ^ 1, 'l' ^ 2, 'o' ^ 1}, ct)
}

func TestDecryptInvertsEncrypt(t *testing.T) {
	key := []byte("quantumlogic-key")
	plaintext := []byte(`{"score":0.78125,"target":5}`)

	ct, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ct)

	pt, err := Decrypt(ct, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

func TestEncryptEmptyInputs(t *testing.T) {
	ct, err := Encrypt(nil, []byte("k"))
	require.NoError(t, err)
	assert.Empty(t, ct)

	_, err = Encrypt([]byte("data"), nil)
	assert.True(t, errors.Is(err, ErrEmptyKey))
	_, err = Decrypt([]byte("data"), []byte{})
	assert.True(t, errors.Is(err, ErrEmptyKey))
}
