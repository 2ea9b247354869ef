// FILE: logviewer/src/internal/auth/token.go
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken returns a random bearer token of length bytes, URL-safe
// base64 encoded without padding
func GenerateToken(length int) (string, error) {
	if length > 512 {
		return "", fmt.Errorf("token length exceeds maximum (512 bytes)")
	}
	if length < 1 {
		return "", fmt.Errorf("token length must be positive")
	}

	token := make([]byte, length)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(token), nil
}

// IssueJWT signs an HS256 token for subject, valid for ttl
func IssueJWT(signingKey, subject, issuer, audience string, ttl time.Duration) (string, error) {
	if signingKey == "" {
		return "", fmt.Errorf("signing key required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingKey))
}
