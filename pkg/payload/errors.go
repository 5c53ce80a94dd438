package payload

import "errors"

var (
	ErrInvalidJSON     = errors.New("payload: invalid JSON")
	ErrNotObject       = errors.New("payload: value is not an object")
	ErrUnsupportedType = errors.New("payload: unsupported value type")
)
