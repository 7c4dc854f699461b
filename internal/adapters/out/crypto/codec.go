// Package crypto provides the property transforms used to protect sensitive
// order data: an authenticated cipher for values that must be recoverable and
// a one-way digest for values that only need comparison.
package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/pipeline"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is returned when the codec key is not the cipher's key size.
	ErrInvalidKeySize = errors.New("codec key must be 32 bytes")

	// ErrCiphertextTooShort is returned when a stored value is shorter than the nonce.
	ErrCiphertextTooShort = errors.New("ciphertext is too short")
)

// Codec encrypts and decrypts string values with an XChaCha20-Poly1305 AEAD.
// Ciphertexts are base64 encoded with the random nonce prepended, so every
// encryption of the same value yields a different stored form.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec creates a codec from a 32-byte key.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	return &Codec{aead: aead}, nil
}

// Encrypt seals a plaintext string into its stored form.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a stored form back into its plaintext string.
func (c *Codec) Decrypt(stored string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", err
	}
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return "", ErrCiphertextTooShort
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// EncryptTransform adapts the codec into a pipeline transform for guard use.
func (c *Codec) EncryptTransform() pipeline.Transform {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("cannot encrypt %T, want string", v)
		}
		return c.Encrypt(s)
	}
}

// HashTransform returns a pipeline transform replacing a string value with the
// hex form of its SHA3-256 digest. One way; used where the original value must
// not be recoverable.
func HashTransform() pipeline.Transform {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("cannot hash %T, want string", v)
		}
		digest := sha3.Sum256([]byte(s))
		return hex.EncodeToString(digest[:]), nil
	}
}
