package oauth

import "fmt"

// ConfigurationError signals that a token request cannot be assembled
// because static configuration or call metadata is missing or inconsistent.
//
// It is terminal for the call being authorized: the same inputs always fail,
// so callers should not retry.
type ConfigurationError struct {
	msg string
}

// NewConfigurationError returns a ConfigurationError with the given message.
func NewConfigurationError(msg string) ConfigurationError {
	return ConfigurationError{msg: msg}
}

func configurationErrorf(format string, args ...any) ConfigurationError {
	return ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

func (e ConfigurationError) Error() string {
	return e.msg
}

// CredentialsError signals that a CredentialsSupplier failed to provide credentials.
//
// The underlying failure is preserved and can be inspected with errors.Unwrap.
type CredentialsError struct {
	Err error
}

func (e CredentialsError) Error() string {
	return fmt.Sprintf("obtaining credentials: %s", e.Err)
}

func (e CredentialsError) Unwrap() error {
	return e.Err
}
