package payload

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/MKhiriev/go-qr-forge/models"
)

// MaxTextLength is the largest text payload accepted, in UTF-16 code units.
// It matches the byte-mode capacity of a version 40-L symbol.
const MaxTextLength = 4296

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Encode validates p and encodes it for its type.
//
// Encode never panics and never returns a Go error: every failure,
// including an unexpected one inside an encoder, is reported as an invalid
// result whose Error field is suitable for display.
func Encode(p models.Payload) (res models.EncodeResult) {
	defer func() {
		if r := recover(); r != nil {
			res = models.Invalid(panicMessage(r))
		}
	}()

	encoded, err := encode(normalize(p))
	if err != nil {
		return models.Invalid(err.Error())
	}
	return models.Valid(encoded)
}

// EncodeTyped decodes the envelope and encodes the resulting payload.
// Unknown types and malformed records become invalid results.
func EncodeTyped(t models.TypedData) models.EncodeResult {
	p, err := t.Payload()
	if errors.Is(err, models.ErrUnknownDataType) {
		return models.Invalid(ErrUnknownType.Error())
	}
	if err != nil {
		return models.Invalid(err.Error())
	}
	return Encode(p)
}

// Regenerate re-encodes a detection result, which is how a scanned payload
// is re-rendered with new visual options.
func Regenerate(d models.DetectionResult) models.EncodeResult {
	return Encode(d.Data)
}

// ValidateURL trims raw, prepends https:// when no http(s) scheme is given
// and checks that the result parses as an absolute URL with a host name.
// A bare port such as https://:80 is rejected.
func ValidateURL(raw string) (string, error) {
	v := trim(raw)
	if v == "" {
		return "", ErrURLRequired
	}
	v = withHTTPS(v)

	u, err := url.Parse(v)
	if err != nil || u.Hostname() == "" {
		return "", ErrURLInvalid
	}
	return v, nil
}

func encode(p models.Payload) (string, error) {
	switch d := p.(type) {
	case models.URLData:
		return ValidateURL(d.Value)

	case models.TextData:
		v := trim(d.Value)
		if v == "" {
			return "", ErrTextRequired
		}
		if textLength(v) > MaxTextLength {
			return "", ErrTextTooLong
		}
		return v, nil

	case models.WifiData:
		if trim(d.SSID) == "" {
			return "", ErrSSIDRequired
		}
		return EncodeWifi(d), nil

	case models.EmailData:
		d.Address = trim(d.Address)
		if d.Address == "" {
			return "", ErrEmailRequired
		}
		if !emailShape.MatchString(d.Address) {
			return "", ErrEmailInvalid
		}
		return EncodeEmail(d), nil

	case models.PhoneData:
		v := trim(d.Value)
		if v == "" {
			return "", ErrPhoneRequired
		}
		return EncodePhone(v), nil

	case models.SMSData:
		d.Phone = trim(d.Phone)
		if d.Phone == "" {
			return "", ErrPhoneRequired
		}
		return EncodeSMS(d), nil

	case models.VCardData:
		if trim(d.FirstName) == "" && trim(d.LastName) == "" {
			return "", ErrNameRequired
		}
		return EncodeVCard(d), nil
	}

	return "", ErrUnknownType
}

// normalize turns pointer records into values so encode only has to match
// value types.
func normalize(p models.Payload) models.Payload {
	switch v := p.(type) {
	case *models.URLData:
		return *v
	case *models.TextData:
		return *v
	case *models.PhoneData:
		return *v
	case *models.WifiData:
		return *v
	case *models.EmailData:
		return *v
	case *models.SMSData:
		return *v
	case *models.VCardData:
		return *v
	}
	return p
}

func panicMessage(r any) string {
	var msg string
	switch v := r.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	case fmt.Stringer:
		msg = v.String()
	}
	if msg == "" {
		return ErrEncodingFailed.Error()
	}
	return msg
}
