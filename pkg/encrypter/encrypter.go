package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	nonceSize = 12
	tagSize   = 16
)

var (
	// ErrMalformedCiphertext indicates the stored value is not in iv:tag:data form.
	ErrMalformedCiphertext = errors.New("encrypter: malformed ciphertext")

	// ErrEmptyPlaintext indicates an attempt to encrypt an empty value.
	ErrEmptyPlaintext = errors.New("encrypter: plaintext is empty")
)

// Encrypter performs reversible symmetric encryption for values at rest.
// Decrypt(Encrypt(x)) == x for all non-empty x.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// aesGCM encrypts with AES-256-GCM. The key is SHA-256 of the configured
// secret, and ciphertexts are encoded as "ivHex:tagHex:dataHex" so values
// written by earlier deployments remain readable.
type aesGCM struct {
	key [32]byte
}

var _ Encrypter = (*aesGCM)(nil)

// New creates an Encrypter from the given secret.
func New(secret string) Encrypter {
	return &aesGCM{key: sha256.Sum256([]byte(secret))}
}

func (e *aesGCM) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}

	gcm, err := e.newGCM()
	if err != nil {
		return "", err
	}

	iv := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("encrypter: failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	data, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(data),
	), nil
}

func (e *aesGCM) Decrypt(ciphertext string) (string, error) {
	parts := strings.Split(ciphertext, ":")
	if len(parts) != 3 {
		return "", ErrMalformedCiphertext
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != nonceSize {
		return "", ErrMalformedCiphertext
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return "", ErrMalformedCiphertext
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	gcm, err := e.newGCM()
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(data, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("encrypter: failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

func (e *aesGCM) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key[:])
	if err != nil {
		return nil, fmt.Errorf("encrypter: failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encrypter: failed to create GCM: %w", err)
	}
	return gcm, nil
}
