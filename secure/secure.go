// Package secure encrypts short strings with AES-CBC for storage or
// transport as base64 text.
//
// Plaintext is zero padded to the block size and trailing zero bytes are
// stripped on decryption, so plaintexts ending in NUL bytes do not survive a
// round trip. Keys are zero padded to the next AES key size (16, 24 or 32
// bytes); IVs are zero padded or truncated to 16 bytes.
//
//	token, err := secure.Encrypt("user-42")
//	plain, err := secure.Decrypt(token, secure.WithKey("another-secret"))
package secure

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// DefaultKey is used when no WithKey option is given.
	DefaultKey = "defaultAa123456"

	// DefaultIV is used when no WithIV option is given.
	DefaultIV = "123456789"
)

var (
	// ErrKeyTooLong is returned for keys longer than 32 bytes.
	ErrKeyTooLong = errors.New("arbor: key longer than 32 bytes")

	// ErrCiphertext is returned when the input is not a whole number of
	// AES blocks.
	ErrCiphertext = errors.New("arbor: malformed ciphertext")
)

type options struct {
	key []byte
	iv  []byte
}

// Option overrides the key or IV for a single call.
type Option func(*options)

// WithKey sets the encryption key.
func WithKey(key string) Option {
	return func(o *options) { o.key = []byte(key) }
}

// WithIV sets the initialisation vector.
func WithIV(iv string) Option {
	return func(o *options) { o.iv = []byte(iv) }
}

func newBlock(opts []Option) (cipher.Block, []byte, error) {
	o := options{key: []byte(DefaultKey), iv: []byte(DefaultIV)}
	for _, opt := range opts {
		opt(&o)
	}

	key, err := padKey(o.key)
	if err != nil {
		return nil, nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	iv := make([]byte, aes.BlockSize)
	copy(iv, o.iv)
	return block, iv, nil
}

func padKey(key []byte) ([]byte, error) {
	for _, size := range []int{16, 24, 32} {
		if len(key) <= size {
			padded := make([]byte, size)
			copy(padded, key)
			return padded, nil
		}
	}
	return nil, fmt.Errorf("%w: %d bytes", ErrKeyTooLong, len(key))
}

// Encrypt returns the base64 encoded AES-CBC ciphertext of plain.
// An empty plaintext encrypts to an empty string.
func Encrypt(plain string, opts ...Option) (string, error) {
	block, iv, err := newBlock(opts)
	if err != nil {
		return "", err
	}

	data := []byte(plain)
	if rem := len(data) % aes.BlockSize; rem != 0 {
		data = append(data, make([]byte, aes.BlockSize-rem)...)
	}
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, data)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt.
func Decrypt(encoded string, opts ...Option) (string, error) {
	block, iv, err := newBlock(opts)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertext, err)
	}
	if len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %d bytes", ErrCiphertext, len(data))
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return string(bytes.TrimRight(out, "\x00")), nil
}
