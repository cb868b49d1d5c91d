package helpers

import "testing"

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !h.Compare(hash, "s3cret-pass") {
		t.Error("expected matching password to compare true")
	}
	if h.Compare(hash, "wrong-pass") {
		t.Error("expected mismatching password to compare false")
	}
}
