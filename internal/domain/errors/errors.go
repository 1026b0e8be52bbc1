package errors

import "fmt"

// ConfigError indicates a missing or invalid configuration value. It is
// always raised before any network call is made.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// AuthError indicates the remote service rejected our credentials or
// permissions. Fatal for identity resolution, degrading for the image
// upload path.
type AuthError struct {
	Service string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error [%s]: %s: %v", e.Service, e.Message, e.Err)
	}
	return fmt.Sprintf("auth error [%s]: %s", e.Service, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new authorization error
func NewAuthError(service, message string, err error) *AuthError {
	return &AuthError{
		Service: service,
		Message: message,
		Err:     err,
	}
}

// NetworkError indicates a transport-level failure talking to a remote
// service.
type NetworkError struct {
	Service string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error [%s]: %s: %v", e.Service, e.Message, e.Err)
	}
	return fmt.Sprintf("network error [%s]: %s", e.Service, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new transport error
func NewNetworkError(service, message string, err error) *NetworkError {
	return &NetworkError{
		Service: service,
		Message: message,
		Err:     err,
	}
}

// GenerationError indicates the AI backend returned an error or a
// malformed payload. Fatal for text generation, degrading for images.
type GenerationError struct {
	Provider string
	Message  string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation error [%s]: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("generation error [%s]: %s", e.Provider, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new generation error
func NewGenerationError(provider, message string, err error) *GenerationError {
	return &GenerationError{
		Provider: provider,
		Message:  message,
		Err:      err,
	}
}

// PublishError indicates the social platform rejected the final post
// submission. Carries the status and raw response body for diagnosis.
type PublishError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *PublishError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("publish error [status %d]: %v: %s", e.StatusCode, e.Err, e.Body)
	}
	return fmt.Sprintf("publish error [status %d]: %s", e.StatusCode, e.Body)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// NewPublishError creates a new publish error
func NewPublishError(statusCode int, body string, err error) *PublishError {
	return &PublishError{
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}
