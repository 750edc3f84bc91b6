package service

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Secret123" {
		t.Fatalf("hash must not equal the raw password")
	}
	if !h.Verify("Secret123", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if h.Verify("WrongPass", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestPasswordHasher_SaltedOutput(t *testing.T) {
	h := NewPasswordHasher(4)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ (per-call salt)")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(4)

	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", bad) {
			t.Fatalf("malformed hash %q must verify as false", bad)
		}
	}
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	h := NewPasswordHasher(99)
	if _, err := h.Hash("pw"); err != nil {
		t.Fatalf("out-of-range cost should fall back to default, got error: %v", err)
	}
}
