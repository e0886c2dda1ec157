package service

import (
	"context"
	"errors"
	"testing"

	"lol-tracker/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t, upstreamWithMatches(nil))
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "secret"},
		{"missing password", "a@b.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.users.Register(ctx, tc.email, tc.password, "Test"); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newFixture(t, upstreamWithMatches(nil))

	user, err := f.users.Register(context.Background(), "a@b.com", "secret", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "secret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t, upstreamWithMatches(nil))
	ctx := context.Background()

	if _, err := f.users.Register(ctx, "a@b.com", "secret", "Test"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := f.users.Register(ctx, "a@b.com", "other", "Other"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLinkSummonerValidation(t *testing.T) {
	f := newFixture(t, upstreamWithMatches(nil))
	ctx := context.Background()

	user, err := f.users.Register(ctx, "a@b.com", "secret", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := f.users.LinkSummoner(ctx, user.ID, ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name: expected ErrValidation, got %v", err)
	}
	if err := f.users.LinkSummoner(ctx, 9999, "Foo"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user: expected ErrUserNotFound, got %v", err)
	}
	// unknown user wins over the missing-name check
	if err := f.users.LinkSummoner(ctx, 9999, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user with empty name: expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t, upstreamWithMatches(nil))
	ctx := context.Background()

	user, err := f.users.Register(ctx, "a@b.com", "secret", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := f.users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.users.Delete(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("second delete: expected ErrUserNotFound, got %v", err)
	}
}
