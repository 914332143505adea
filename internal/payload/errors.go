package payload

import "errors"

// Validation errors returned by Encode. Their text is shown to users as is.
var (
	ErrURLRequired   = errors.New("Please enter a URL")
	ErrURLInvalid    = errors.New("Please enter a valid URL")
	ErrTextRequired  = errors.New("Please enter some text")
	ErrTextTooLong   = errors.New("Text is too long for a QR code (max ~4296 chars)")
	ErrSSIDRequired  = errors.New("Please enter a network name (SSID)")
	ErrEmailRequired = errors.New("Please enter an email address")
	ErrEmailInvalid  = errors.New("Please enter a valid email")
	ErrPhoneRequired = errors.New("Please enter a phone number")
	ErrNameRequired  = errors.New("Please enter a name")

	ErrUnknownType    = errors.New("Unknown QR type")
	ErrEncodingFailed = errors.New("Encoding failed")
)
