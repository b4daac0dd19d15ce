package adavalidate

import "errors"

var (
	ErrInvalidConfig  = errors.New("adavalidate: invalid configuration")
	ErrLoadExtensions = errors.New("adavalidate: failed to load extension definitions")
)
