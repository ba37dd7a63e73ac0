package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	gymID := uuid.New()
	memberID := uuid.New()
	sub := TokenSubject{
		Subject:  memberID,
		Role:     "member",
		GymID:    &gymID,
		MemberID: &memberID,
	}

	pair, err := IssueTokenPair(sub, "access-secret", "refresh-secret")
	if err != nil {
		t.Fatalf("IssueTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens populated")
	}
	if pair.ExpiresIn != int64(AccessTokenTTL.Seconds()) {
		t.Errorf("ExpiresIn = %d", pair.ExpiresIn)
	}

	got, err := ParseToken(pair.AccessToken, "access-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if got.Subject != memberID || got.Role != "member" {
		t.Errorf("subject/role mismatch: %+v", got)
	}
	if got.GymID == nil || *got.GymID != gymID {
		t.Errorf("gym_id not round-tripped")
	}
	if got.MemberID == nil || *got.MemberID != memberID {
		t.Errorf("member_id not round-tripped")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	pair, err := IssueTokenPair(TokenSubject{Subject: uuid.New(), Role: "owner"}, "secret-a", "secret-a")
	if err != nil {
		t.Fatalf("IssueTokenPair: %v", err)
	}
	if _, err := ParseToken(pair.AccessToken, "secret-b"); err == nil {
		t.Errorf("expected rejection with wrong secret")
	}
}

func TestRefreshTokenUsesOwnSecret(t *testing.T) {
	pair, err := IssueTokenPair(TokenSubject{Subject: uuid.New(), Role: "gym_admin"}, "access-secret", "refresh-secret")
	if err != nil {
		t.Fatalf("IssueTokenPair: %v", err)
	}
	// Refresh token tidak boleh lolos verifikasi dengan access secret
	if _, err := ParseToken(pair.RefreshToken, "access-secret"); err == nil {
		t.Errorf("refresh token must not verify against access secret")
	}
	if _, err := ParseToken(pair.RefreshToken, "refresh-secret"); err != nil {
		t.Errorf("refresh token should verify against refresh secret: %v", err)
	}
}
