package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSize         = errors.New("size must be between 64 and 2048 pixels")
	ErrInvalidColor        = errors.New("colour must be #rgb or #rrggbb")
	ErrInvalidCorrectLevel = errors.New("correct level must be one of L, M, Q, H")
	ErrInvalidFormat       = errors.New("format must be one of png, svg, txt, zip, framed")
	ErrLabelTooLong        = errors.New("label must be at most 64 characters")
	ErrInvalidType         = errors.New("unknown QR type")

	ErrEmptyTemplateID   = errors.New("template id is required")
	ErrEmptyTemplateName = errors.New("template name is required")
	ErrTemplateEncode    = errors.New("template data does not encode")

	ErrEmptyEntryID      = errors.New("history entry id is required")
	ErrEmptyPayload      = errors.New("history entry payload is required")
	ErrLengthMismatch    = errors.New("length does not match number of entries")
	ErrTooManyEntries    = errors.New("too many history entries")
	ErrDuplicateEntryIDs = errors.New("duplicate history entry id")
)
