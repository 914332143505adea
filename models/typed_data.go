package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownDataType is returned when a TypedData carries a type outside AllTypes.
var ErrUnknownDataType = errors.New("unknown QR type")

// TypedData is the wire envelope of a Payload: a type tag plus the raw
// record. History entries, templates and API requests all use it.
type TypedData struct {
	Type QRDataType      `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewTypedData wraps p into an envelope.
func NewTypedData(p Payload) (TypedData, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return TypedData{}, fmt.Errorf("marshal %s payload: %w", p.Type(), err)
	}
	return TypedData{Type: p.Type(), Data: raw}, nil
}

// Payload decodes the envelope into its concrete record.
func (t TypedData) Payload() (Payload, error) {
	return DecodePayload(t.Type, t.Data)
}

// DecodePayload decodes raw into the record type matching t.
// Empty or null raw data yields the zero record.
func DecodePayload(t QRDataType, raw json.RawMessage) (Payload, error) {
	var p Payload
	switch t {
	case TypeURL:
		p = &URLData{}
	case TypeText:
		p = &TextData{}
	case TypePhone:
		p = &PhoneData{}
	case TypeWifi:
		p = &WifiData{}
	case TypeEmail:
		p = &EmailData{}
	case TypeSMS:
		p = &SMSData{}
	case TypeVCard:
		p = &VCardData{}
	default:
		return nil, ErrUnknownDataType
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
	}

	return deref(p), nil
}

func deref(p Payload) Payload {
	switch v := p.(type) {
	case *URLData:
		return *v
	case *TextData:
		return *v
	case *PhoneData:
		return *v
	case *WifiData:
		return *v
	case *EmailData:
		return *v
	case *SMSData:
		return *v
	case *VCardData:
		return *v
	}
	return p
}

// EncodeResult is the outcome of encoding a Payload: either a valid
// encoded string or a human-readable error message. Never both.
type EncodeResult struct {
	Valid   bool   `json:"valid"`
	Encoded string `json:"encoded,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Valid builds a successful EncodeResult.
func Valid(encoded string) EncodeResult {
	return EncodeResult{Valid: true, Encoded: encoded}
}

// Invalid builds a failed EncodeResult.
func Invalid(message string) EncodeResult {
	return EncodeResult{Error: message}
}

// DetectionResult is the classification of an arbitrary string into a
// QRDataType plus the fields recovered from it.
type DetectionResult struct {
	Type QRDataType `json:"type"`
	Data Payload    `json:"data"`
}

// UnmarshalJSON decodes the data field according to the type field.
func (d *DetectionResult) UnmarshalJSON(b []byte) error {
	var env TypedData
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	p, err := env.Payload()
	if err != nil {
		return err
	}
	d.Type = env.Type
	d.Data = p
	return nil
}
