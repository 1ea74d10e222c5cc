// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// passphraseSealer is the Argon2id and AES-GCM implementation of [Sealer].
type passphraseSealer struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	passphrase []byte
	salt       []byte
	gcm        cipher.AEAD

	mu sync.Mutex
	// opened caches the ciphers derived for salts of earlier runs.
	opened map[string]cipher.AEAD
}

// NewPassphraseSealer derives the sealing key from passphrase and a random
// salt. Derivation uses Argon2id with 1 iteration, 64 MiB of memory and
// 4 threads, so construction takes noticeable time and memory.
func NewPassphraseSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	s := &passphraseSealer{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		passphrase:   []byte(passphrase),
		opened:       map[string]cipher.AEAD{},
	}

	s.salt = make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, s.salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.cipherFor(s.salt)
	if err != nil {
		return nil, err
	}
	s.gcm = gcm
	return s, nil
}

func (s *passphraseSealer) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+s.gcm.Overhead())
	blob = append(blob, s.salt...)
	blob = append(blob, nonce...)
	blob = s.gcm.Seal(blob, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (s *passphraseSealer) Open(sealed string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSealedData, err)
	}

	nonceSize := s.gcm.NonceSize()
	if len(blob) < saltSize+nonceSize {
		return nil, ErrMalformedSealedData
	}
	salt, nonce, ciphertext := blob[:saltSize], blob[saltSize:saltSize+nonceSize], blob[saltSize+nonceSize:]

	gcm, err := s.openerFor(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// openerFor returns the cipher for salt, deriving it once per salt.
func (s *passphraseSealer) openerFor(salt []byte) (cipher.AEAD, error) {
	if bytes.Equal(salt, s.salt) {
		return s.gcm, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gcm, ok := s.opened[string(salt)]; ok {
		return gcm, nil
	}
	gcm, err := s.cipherFor(salt)
	if err != nil {
		return nil, err
	}
	s.opened[string(salt)] = gcm
	return gcm, nil
}

func (s *passphraseSealer) cipherFor(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
