// Package auth holds the credential primitives of the server: HS256 bearer
// tokens and bcrypt password hashes.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs an HS256 token whose subject is the username and whose
// expiry lies validityDuration after now.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies the signature and expiry of tokenString and
// returns its subject. Expired tokens yield common.ErrTokenExpired, anything
// else that fails verification yields common.ErrInvalidToken.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
