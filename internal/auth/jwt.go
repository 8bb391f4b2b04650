// Package auth signs and verifies the persisted session token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobhunt/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carry the session's user alongside the standard claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Name   string `json:"name"`
}

// GenerateToken signs a session token for userID. A zero ttl produces a
// token without expiry.
func GenerateToken(userID int64, name string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	rc := jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: rc, UserID: userID, Name: name})
	s, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return s, nil
}

// ParseToken verifies tokenString and returns its claims. Expired, forged
// or malformed tokens yield common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte, now time.Time) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, errors.Join(common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
