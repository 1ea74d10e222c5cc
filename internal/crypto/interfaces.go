// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals the client secrets kept on disk.
//
// A sealed value is the standard base64 encoding of
//
//	salt (16 bytes) || nonce (12 bytes) || AES-256-GCM ciphertext
//
// where the AES key is derived from a passphrase and the salt with Argon2id.
// The salt travels with the value, so a value sealed by an earlier run opens
// as long as the passphrase is unchanged.
package crypto

// Sealer encrypts and authenticates short secrets such as session tokens.
type Sealer interface {
	// Seal encrypts plaintext with a fresh nonce and returns the encoded blob.
	Seal(plaintext []byte) (string, error)

	// Open decodes and decrypts a blob produced by Seal. It returns
	// ErrMalformedSealedData for a blob that cannot be split and
	// ErrDecryptionFailed when the passphrase differs or the blob was
	// altered.
	Open(sealed string) ([]byte, error)
}
