package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}

	tokenString, err := GenerateJWT(42, "a@x.com", "admin")

	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	token, err := VerifyJWT(tokenString)

	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		t.Fatal("expected MapClaims")
	}

	if userID, _ := claims["user_id"].(float64); uint(userID) != 42 {
		t.Errorf("expected user_id 42, got %v", claims["user_id"])
	}

	if email, _ := claims["email"].(string); email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %v", claims["email"])
	}

	if role, _ := claims["role"].(string); role != "admin" {
		t.Errorf("expected role admin, got %v", claims["role"])
	}
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}

	tokenString, err := GenerateJWT(1, "a@x.com", "user")

	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := VerifyJWT(tokenString + "x"); err == nil {
		t.Error("expected tampered token to fail verification")
	}
}

func TestVerifyJWTRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	t.Setenv("JWT_TTL_HOURS", "")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}

	tokenString, err := GenerateJWT(1, "a@x.com", "user")

	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("failed to re-init: %v", err)
	}

	if _, err := VerifyJWT(tokenString); err == nil {
		t.Error("expected token signed with a different secret to fail")
	}
}

func TestInitJWTSecretValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if err := InitJWTSecret(); err == nil {
		t.Error("expected an error when JWT_SECRET is unset")
	}

	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	if err := InitJWTSecret(); err == nil {
		t.Error("expected an error for a malformed JWT_TTL_HOURS")
	}
}
