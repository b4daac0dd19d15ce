package field

import "errors"

var (
	ErrNilElement         = errors.New("field: element is nil")
	ErrNilRegistry        = errors.New("field: registry is nil")
	ErrUnsupportedElement = errors.New("field: validation can only be attached to input or select elements")
)
