package crypto

import "testing"

func TestHashPasswordAndVerify(t *testing.T) {
	hash, err := HashPassword("pw12345")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if hash == "pw12345" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	if !VerifyPassword("pw12345", hash) {
		t.Error("VerifyPassword() = false for correct password")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("pw12345")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("pw12345")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if VerifyPassword("pw12345", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword() = true for malformed hash")
	}
}
