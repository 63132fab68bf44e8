package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	ErrEmptyKey      = errors.New("secret: empty key")
	ErrInvalidCipher = errors.New("secret: invalid ciphertext")
)

// Box seals short values (Ozon API keys) with a key derived from the
// configured passphrase.
type Box struct {
	key [32]byte
}

func NewBox(passphrase string) (*Box, error) {
	if passphrase == "" {
		return nil, ErrEmptyKey
	}

	return &Box{key: sha256.Sum256([]byte(passphrase))}, nil
}

// Encrypt returns base64(nonce || sealed).
func (b *Box) Encrypt(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "secret: generate nonce")
	}

	sealed := secretbox.Seal(nonce[:], []byte(plain), &nonce, &b.key)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (b *Box) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(ErrInvalidCipher, err.Error())
	}

	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrInvalidCipher
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrInvalidCipher
	}

	return string(plain), nil
}
