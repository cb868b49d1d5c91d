package helpers

import (
	"strconv"
	"testing"
)

func TestGenOTPCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenOTPCode()
		if err != nil {
			t.Fatalf("GenOTPCode error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code is not numeric: %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code out of range: %d", n)
		}
		seen[code] = true
	}
	// 200 draws from 900k values colliding down to a handful would mean a broken generator
	if len(seen) < 100 {
		t.Errorf("suspiciously few distinct codes: %d", len(seen))
	}
}
