package config

import "errors"

// Sentinel parse failures. Parse wraps each of these in a *ParseError so
// callers can dispatch on the kind with errors.Is while still getting the
// source and token context from the message.
var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnknownToken    = errors.New("unknown token")
	ErrBadNumber       = errors.New("invalid number")
	ErrNoServers       = errors.New("empty server list")
	ErrDuplicateLayout = errors.New("duplicate layout")
)

// ParseError is a syntax or validation failure at a specific point in a
// configuration file. Source is the path as given to Parse, Detail names
// the offending or expected token, and Err is one of the sentinels above.
type ParseError struct {
	Source string
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	return e.Source + ": " + e.Detail
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
