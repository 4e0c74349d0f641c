package moderation

import (
	"errors"
	"fmt"
)

// ConfigurationError means the classifier has no credential configured.
// The engine fails open on it.
type ConfigurationError struct {
	Provider string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("classifier %s: no credential configured", e.Provider)
}

// TransportError covers network failures and timeouts against the remote
// classifier. The engine fails safe to review on it.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("classifier %s: transport failure: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError means the remote classifier answered with something that does
// not decode to the expected response shape. Same policy as TransportError.
type ParseError struct {
	Provider string
	Raw      string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("classifier %s: malformed response: %v", e.Provider, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func IsConfigurationError(err error) bool {
	var configurationError *ConfigurationError
	return errors.As(err, &configurationError)
}

func IsTransportError(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError)
}

func IsParseError(err error) bool {
	var parseError *ParseError
	return errors.As(err, &parseError)
}
