package models

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ShareRequest asks for a signed link that renders the payload on demand.
type ShareRequest struct {
	TypedData

	Options RenderOptions `json:"options"`
}

// ShareResponse carries the issued token and the path it can be fetched from.
type ShareResponse struct {
	Token     string    `json:"token"`
	Path      string    `json:"path"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ShareClaims is the JWT claim set of a share token. The structured input
// travels inside the token so resolving it needs no server-side state.
type ShareClaims struct {
	jwt.RegisteredClaims

	Type    QRDataType      `json:"qt"`
	Data    json.RawMessage `json:"qd"`
	Options RenderOptions   `json:"qo"`
}

// Typed returns the shared payload as an envelope.
func (c ShareClaims) Typed() TypedData {
	return TypedData{Type: c.Type, Data: c.Data}
}

// SharedQR is what a valid share token resolves to.
type SharedQR struct {
	Encoded string
	Options RenderOptions
}
