package file

import (
	"crypto/rand"
	"io"

	"blogpilot/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// sealedMagic prefixes sealed files so plain JSON can still be read.
var sealedMagic = []byte("BPS1")

var errWrongPassphrase = errors.New("session file cannot be opened with the configured passphrase")

// sealer encrypts session files with a passphrase-derived key.
// Layout: magic | salt | nonce | secretbox(payload).
type sealer struct {
	passphrase []byte
}

func newSealer(passphrase string) *sealer {
	if passphrase == "" {
		return nil
	}

	return &sealer{passphrase: []byte(passphrase)}
}

func (s *sealer) deriveKey(salt []byte) *[keySize]byte {
	var key [keySize]byte
	copy(key[:], argon2.IDKey(s.passphrase, salt, argonTime, argonMemory, argonThreads, keySize))

	return &key
}

func (s *sealer) seal(plain []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.Wrap(err, "read salt")
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}

	out := make([]byte, 0, len(sealedMagic)+saltSize+nonceSize+len(plain)+secretbox.Overhead)
	out = append(out, sealedMagic...)
	out = append(out, salt...)
	out = append(out, nonce[:]...)

	return secretbox.Seal(out, plain, &nonce, s.deriveKey(salt)), nil
}

func (s *sealer) open(data []byte) ([]byte, error) {
	header := len(sealedMagic) + saltSize + nonceSize
	if len(data) < header+secretbox.Overhead {
		return nil, errors.New("sealed session file is truncated")
	}

	salt := data[len(sealedMagic) : len(sealedMagic)+saltSize]
	var nonce [nonceSize]byte
	copy(nonce[:], data[len(sealedMagic)+saltSize:header])

	plain, ok := secretbox.Open(nil, data[header:], &nonce, s.deriveKey(salt))
	if !ok {
		return nil, errWrongPassphrase
	}

	return plain, nil
}

func isSealed(data []byte) bool {
	return len(data) >= len(sealedMagic) && string(data[:len(sealedMagic)]) == string(sealedMagic)
}
