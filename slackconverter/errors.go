package slackconverter

import "errors"

var (
	// ErrUnknownNode is returned for block nodes without a rendering rule when
	// Config.UnknownNodes is UnknownError.
	ErrUnknownNode = errors.New("unsupported markdown block node")
	// ErrReleased is returned when a Converter is used after With returned.
	ErrReleased = errors.New("converter used after release")
)
