package sf2

import "errors"

var (
	ErrTemplateUnavailable = errors.New("sf2 template unavailable")
	ErrSheetMissing        = errors.New("sf2 template worksheet missing")
	ErrBandOverflow        = errors.New("sf2 student band overflow")
	ErrInvalidRequest      = errors.New("invalid sf2 request")
	ErrGeneration          = errors.New("sf2 generation failed")
)
