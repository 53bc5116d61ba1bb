package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/domain"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "smartonix"
)

func TestValidateTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := SignToken(testSecret, testIssuer, userID, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewTokenVerifier(testSecret, testIssuer)
	got, err := v.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != userID {
		t.Errorf("got %s, want %s", got, userID)
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	v := NewTokenVerifier(testSecret, testIssuer)
	_, err := v.ValidateToken(context.Background(), "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := SignToken("another-secret-another-secret-32", testIssuer, uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewTokenVerifier(testSecret, testIssuer)
	if _, err := v.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	token, err := SignToken(testSecret, "someone-else", uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewTokenVerifier(testSecret, testIssuer)
	if _, err := v.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := SignToken(testSecret, testIssuer, uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewTokenVerifier(testSecret, testIssuer)
	if _, err := v.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	v := NewTokenVerifier(testSecret, testIssuer)
	if _, err := v.ValidateToken(context.Background(), "not.a.jwt"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}
