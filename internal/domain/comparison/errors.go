package comparison

import "errors"

var (
	ErrInvalidRequestBody = errors.New("invalid request body")
)
