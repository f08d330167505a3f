package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"cesizen/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(42, "user@example.com", model.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestValidateTokenTampered(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(1, "a@example.com", model.RoleAdmin)
	assert.NoError(t, err)

	// flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(1, "a@example.com", model.RoleUser)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := &Claims{
		UserID: 7,
		Email:  "old@example.com",
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
