package auth

import "testing"

// TestCheckPasswordBcrypt verifies bcrypt-hashed stored passwords.
func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !CheckPassword(hash, "s3cret") {
		t.Error("Expected bcrypt match")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("Expected bcrypt mismatch")
	}
}

// TestCheckPasswordPlaintext verifies plaintext stored passwords compare in
// constant time.
func TestCheckPasswordPlaintext(t *testing.T) {
	if !CheckPassword("s3cret", "s3cret") {
		t.Error("Expected plaintext match")
	}
	if CheckPassword("s3cret", "wrong") {
		t.Error("Expected plaintext mismatch")
	}
}
