package usage

import "errors"

var (
	ErrMissingUser   = errors.New("usage: scope has no user id")
	ErrNegativeDelta = errors.New("usage: negative delta")
)
