package usecase

import (
	"errors"
	"testing"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unconfigured secrets", func(t *testing.T) {
		uc := NewAuthUseCase("", "")
		_, err := uc.Login("admin", "secret")
		if !errors.Is(err, ErrCredentialsNotConfigured) {
			t.Fatalf("expected ErrCredentialsNotConfigured, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase("admin", "secret")
		_, err := uc.Login("admin", "errada")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong username", func(t *testing.T) {
		uc := NewAuthUseCase("admin", "secret")
		_, err := uc.Login("root", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("credentials are compared trimmed", func(t *testing.T) {
		uc := NewAuthUseCase(" admin ", "secret\n")
		token, err := uc.Login("admin ", " secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatalf("expected a token")
		}
	})

	t.Run("issued token validates, unknown token does not", func(t *testing.T) {
		uc := NewAuthUseCase("admin", "secret")
		token, err := uc.Login("admin", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !uc.ValidateToken(token) {
			t.Fatalf("expected issued token to validate")
		}
		if uc.ValidateToken("fabricado") {
			t.Fatalf("expected unknown token to fail")
		}
		if uc.ValidateToken("") {
			t.Fatalf("expected empty token to fail")
		}
	})

	t.Run("each login issues a distinct token", func(t *testing.T) {
		uc := NewAuthUseCase("admin", "secret")
		t1, _ := uc.Login("admin", "secret")
		t2, _ := uc.Login("admin", "secret")
		if t1 == t2 {
			t.Fatalf("expected distinct tokens")
		}
		if !uc.ValidateToken(t1) || !uc.ValidateToken(t2) {
			t.Fatalf("expected both tokens to remain valid")
		}
	})
}
