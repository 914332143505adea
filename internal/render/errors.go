package render

import "errors"

var (
	// ErrContentTooLong is returned when the payload does not fit the
	// largest symbol at the requested correction level.
	ErrContentTooLong = errors.New("content too long for a QR code at this correction level")

	ErrInvalidColor  = errors.New("invalid colour")
	ErrInvalidFormat = errors.New("unsupported export format")
	ErrEmptyPayload  = errors.New("nothing to render")
)
