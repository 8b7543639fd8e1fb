package security

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if digest == "p1" {
		t.Fatalf("digest equals plaintext")
	}
	if !CheckPassword("p1", digest) {
		t.Fatalf("expected password to verify against its own digest")
	}
	if CheckPassword("p2", digest) {
		t.Fatalf("different password should not verify")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	d1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash 1: %v", err)
	}
	d2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash 2: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two hashes of the same input should differ (fresh salt per call)")
	}
	if !CheckPassword("same", d1) || !CheckPassword("same", d2) {
		t.Fatalf("both digests should verify")
	}
}

func TestHashPassword_EmptyInput(t *testing.T) {
	digest, err := HashPassword("")
	if err != nil {
		t.Fatalf("empty input should still hash: %v", err)
	}
	if !CheckPassword("", digest) {
		t.Fatalf("empty password should verify against its digest")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	if CheckPassword("p1", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest should report false")
	}
	if CheckPassword("p1", "") {
		t.Fatalf("empty digest should report false")
	}
}
