package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidPayload is matched by every [InvalidPayloadError].
	ErrInvalidPayload = errors.New("invalid payload")

	ErrInvalidRenderOptions = errors.New("invalid render options")
	ErrInvalidHistoryImport = errors.New("invalid history import")
	ErrEmptyOwner           = errors.New("history owner is empty")
	ErrHistoryEntryNotFound = errors.New("history entry not found")
	ErrTemplateNotFound     = errors.New("template not found")

	ErrShareDisabled     = errors.New("sharing is disabled: no sign key configured")
	ErrShareTokenInvalid = errors.New("share token is invalid or expired")
)

// InvalidPayloadError carries the user-facing message of a failed encode.
type InvalidPayloadError struct {
	Message string
}

func (e *InvalidPayloadError) Error() string {
	return e.Message
}

func (e *InvalidPayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

func invalidPayload(message string) error {
	return &InvalidPayloadError{Message: message}
}
