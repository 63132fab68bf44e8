package domain

import "errors"

var (
	ErrMalformedRecord    = errors.New("malformed record")
	ErrMissingCredentials = errors.New("ozon client id and api key are required")
)
