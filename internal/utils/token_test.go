// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestNewOpaqueToken_Unique(t *testing.T) {
	a, err := NewOpaqueToken()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	b, _ := NewOpaqueToken()

	if a == b {
		t.Error("expected distinct tokens")
	}
	if len(a) != 43 {
		t.Errorf("expected 43 characters, got %d", len(a))
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("expected equal hashes for equal input")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("expected different hashes for different input")
	}
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashToken("abc"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
