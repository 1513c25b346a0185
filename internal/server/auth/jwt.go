// Package auth holds the server-side authentication primitives: session
// token issuance/verification and password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/finledger/finledger/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload of a session token. Subject carries the
// user id; the rest lets protected handlers and the validate endpoint
// reconstruct the public user view without a database lookup.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// GenerateToken signs a session token for the given user identity with the
// embedded expiry set to now+validityDuration.
func GenerateToken(userID, email, username, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email:    email,
		Username: username,
		Role:     role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns
// its claims. An elapsed expiry yields common.ErrTokenExpired; any other
// verification failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
