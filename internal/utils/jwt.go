package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/golang-jwt/jwt/v5"
)

// ShareTokenIssuer is the iss claim of every share token.
const ShareTokenIssuer = "go-qr-forge"

// GenerateShareToken signs claims with HMAC-SHA256. The issuer, issue time
// and expiry are set here; the payload fields are taken from claims.
func GenerateShareToken(claims models.ShareClaims, ttl time.Duration, signKey string, now time.Time) (string, time.Time, error) {
	if ttl <= 0 || signKey == "" {
		return "", time.Time{}, errors.New("invalid params for generating share token")
	}

	expiresAt := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    ShareTokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error occurred during signing share token: %w", err)
	}

	return signed, expiresAt, nil
}

// ParseShareToken verifies the signature, issuer and expiry of a share
// token and returns its claims.
func ParseShareToken(tokenString, signKey string) (models.ShareClaims, error) {
	var claims models.ShareClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(ShareTokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.ShareClaims{}, fmt.Errorf("error occurred validating and parsing share token: %w", err)
	}

	return claims, nil
}
