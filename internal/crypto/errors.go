// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptyPassphrase     = errors.New("passphrase is empty")
	ErrMalformedSealedData = errors.New("sealed data is malformed")
	ErrDecryptionFailed    = errors.New("decryption failed")
)
