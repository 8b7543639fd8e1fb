package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueToken_VerifyRoundTrip(t *testing.T) {
	token, err := IssueToken("s3cret", "id-1", "a@x.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	claims, err := VerifyToken(token, "s3cret")
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.UserID != "id-1" || claims.Email != "a@x.com" || claims.Role != "admin" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := IssueToken("s3cret", "id-1", "a@x.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := VerifyToken(token, "s3cret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken("secret-one", "id-1", "a@x.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := VerifyToken(token, "secret-two"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken under different secret, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := VerifyToken(token, "s3cret"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestVerifyToken_RejectsUnexpectedAlg(t *testing.T) {
	// A token signed with "none" must never verify, regardless of payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@x.com"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyToken(token, "s3cret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
