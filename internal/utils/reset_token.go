package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// resetPurpose keeps reset tokens from being accepted as session tokens and
// vice versa.
const resetPurpose = "password-reset"

type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateResetToken creates a signed, time-limited token binding the email
// of the account whose password may be reset.
func GenerateResetToken(secret []byte, email string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}
	now := time.Now()
	claims := &resetClaims{
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyResetToken checks signature, purpose and expiry and returns the
// email the token was issued for.
func VerifyResetToken(secret []byte, tokenStr string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Purpose != resetPurpose || claims.Subject == "" {
		return "", errors.New("invalid reset token")
	}
	return claims.Subject, nil
}
