package executor

import "errors"

var (
	ErrSkipped       = errors.New("no executor configured")
	ErrEmptyCommand  = errors.New("runner command is empty")
	ErrUnknownRunner = errors.New("unknown runner kind")
	ErrMissingAPIKey = errors.New("api key is required")
	ErrEmptyResponse = errors.New("model returned no content")
)
