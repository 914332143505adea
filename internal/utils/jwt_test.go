package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shareClaims() models.ShareClaims {
	return models.ShareClaims{
		Type:    models.TypeURL,
		Data:    json.RawMessage(`{"value":"https://go.dev"}`),
		Options: models.RenderOptions{Size: 300, CorrectLevel: models.CorrectMedium},
	}
}

func TestShareToken_RoundTrip(t *testing.T) {
	now := time.Now()

	token, expiresAt, err := GenerateShareToken(shareClaims(), time.Hour, "key", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := ParseShareToken(token, "key")
	require.NoError(t, err)

	assert.Equal(t, models.TypeURL, claims.Type)
	assert.JSONEq(t, `{"value":"https://go.dev"}`, string(claims.Data))
	assert.Equal(t, 300, claims.Options.Size)
	assert.Equal(t, ShareTokenIssuer, claims.Issuer)
}

func TestGenerateShareToken_InvalidParams(t *testing.T) {
	_, _, err := GenerateShareToken(shareClaims(), 0, "key", time.Now())
	assert.Error(t, err)

	_, _, err = GenerateShareToken(shareClaims(), time.Hour, "", time.Now())
	assert.Error(t, err)
}

func TestParseShareToken_WrongKey(t *testing.T) {
	token, _, err := GenerateShareToken(shareClaims(), time.Hour, "key", time.Now())
	require.NoError(t, err)

	_, err = ParseShareToken(token, "other")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseShareToken_Expired(t *testing.T) {
	token, _, err := GenerateShareToken(shareClaims(), time.Hour, "key", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ParseShareToken(token, "key")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseShareToken_WrongIssuer(t *testing.T) {
	claims := shareClaims()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ParseShareToken(token, "key")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestParseShareToken_Malformed(t *testing.T) {
	_, err := ParseShareToken("not.a.token", "key")
	assert.Error(t, err)
}
