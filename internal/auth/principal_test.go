package auth

import (
	"testing"
	"time"

	"github.com/CaCortez384/MiFestival/internal/models"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		ownerID   string
		want      bool
	}{
		{"owner edits own festival", RealUser{ID: "42"}, "42", true},
		{"stranger is rejected", RealUser{ID: "7"}, "42", false},
		{"guest edits guest festival", Guest{}, GuestOwnerID, true},
		{"guest cannot edit a real user's festival", Guest{}, "42", false},
		{"real user cannot edit guest festival", RealUser{ID: "42"}, GuestOwnerID, false},
	}

	for _, tt := range tests {
		f := &models.Festival{OwnerID: tt.ownerID}
		if got := CanEdit(tt.principal, f); got != tt.want {
			t.Errorf("%s: CanEdit = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsGuest(t *testing.T) {
	if !IsGuest(Guest{}) {
		t.Error("Guest must report as guest")
	}
	if IsGuest(RealUser{ID: "1"}) {
		t.Error("RealUser must not report as guest")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	signed, err := tokens.Issue("42", "Carla", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if user.ID != "42" || user.Name != "Carla" || user.Role != "user" {
		t.Errorf("claims round-trip lost data: %+v", user)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Hour).Issue("42", "Carla", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokens("secret-b", time.Hour).Parse(signed); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)

	signed, err := tokens.Issue("42", "Carla", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tokens.Parse(signed); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("correct password must verify")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("wrong password must not verify")
	}
}
