package crypto_test

import (
	"strings"
	"testing"

	"orderflow/internal/adapters/out/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return []byte(strings.Repeat("k", 32))
}

func TestNewCodec_InvalidKeySize(t *testing.T) {
	_, err := crypto.NewCodec([]byte("short"))
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeySize)
}

func TestCodec_EncryptDecrypt_RoundTrip(t *testing.T) {
	codec, err := crypto.NewCodec(testKey())
	require.NoError(t, err)

	stored, err := codec.Encrypt("4111111111111111")
	require.NoError(t, err)
	assert.NotEqual(t, "4111111111111111", stored)
	assert.NotContains(t, stored, "4111")

	plain, err := codec.Decrypt(stored)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", plain)
}

func TestCodec_Encrypt_NonDeterministic(t *testing.T) {
	codec, err := crypto.NewCodec(testKey())
	require.NoError(t, err)

	first, err := codec.Encrypt("4111111111111111")
	require.NoError(t, err)
	second, err := codec.Encrypt("4111111111111111")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCodec_Decrypt_Tampered(t *testing.T) {
	codec, err := crypto.NewCodec(testKey())
	require.NoError(t, err)

	_, err = codec.Decrypt("bm90IGEgcmVhbCBjaXBoZXJ0ZXh0IGF0IGFsbCwganVzdCBiYXNlNjQ=")
	require.Error(t, err)
}

func TestCodec_Decrypt_TooShort(t *testing.T) {
	codec, err := crypto.NewCodec(testKey())
	require.NoError(t, err)

	_, err = codec.Decrypt("c2hvcnQ=")
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrCiphertextTooShort)
}

func TestCodec_EncryptTransform(t *testing.T) {
	codec, err := crypto.NewCodec(testKey())
	require.NoError(t, err)

	fn := codec.EncryptTransform()
	out, err := fn("secret")
	require.NoError(t, err)

	stored, ok := out.(string)
	require.True(t, ok)
	plain, err := codec.Decrypt(stored)
	require.NoError(t, err)
	assert.Equal(t, "secret", plain)

	_, err = fn(42)
	require.Error(t, err)
}

func TestHashTransform_OneWayAndStable(t *testing.T) {
	fn := crypto.HashTransform()

	first, err := fn("4111111111111111")
	require.NoError(t, err)
	second, err := fn("4111111111111111")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, "4111111111111111", first)
	assert.Len(t, first.(string), 64)

	_, err = fn([]byte("not a string"))
	require.Error(t, err)
}
