package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/jazelams/soccer-app/model"
)

func TestTokenRoundTrip(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := NewTokenService("test-secret", 24*time.Hour, mock)

	five := int32(5)
	user := &model.User{
		ID:       42,
		Username: "delegado5",
		Role:     model.RoleTeamRep,
		TeamID:   &five,
	}

	token, err := svc.Generate(user)
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	p, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("error validating token: %v", err)
	}
	if p.UserID != 42 || p.Username != "delegado5" || p.Role != model.RoleTeamRep {
		t.Errorf("principal does not match user: %+v", p)
	}
	if p.TeamID == nil || *p.TeamID != 5 {
		t.Errorf("expected teamId 5, got %v", p.TeamID)
	}
}

func TestTokenWithoutTeam(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, clock.New())

	token, err := svc.Generate(&model.User{ID: 1, Username: "admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	p, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("error validating token: %v", err)
	}
	if p.TeamID != nil {
		t.Errorf("admin token should carry no teamId, got %v", *p.TeamID)
	}
}

func TestTokenExpiry(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := NewTokenService("test-secret", time.Hour, mock)

	token, err := svc.Generate(&model.User{ID: 1, Username: "admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	mock.Add(2 * time.Hour)
	if _, err := svc.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, clock.New())
	verifier := NewTokenService("secret-b", time.Hour, clock.New())

	token, err := issuer.Generate(&model.User{ID: 1, Username: "admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, clock.New())

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(tok); err == nil {
			t.Errorf("expected an error validating %q", tok)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}

	if !CheckPassword(hash, "admin123") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "admin124") {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("not-a-hash", "admin123") {
		t.Error("malformed hash should not verify")
	}
}
