package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldError is a single field/message pair produced by request validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the structured result of a failed validation.
// Order follows the order in which rules were evaluated.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error, keeping only the first message per field
func (e *ValidationErrors) Add(field, message string) {
	if e.Has(field) {
		return
	}
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Has reports whether the field already carries an error
func (e ValidationErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Map flattens the errors into field -> message, the shape pages consume
func (e ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound  = &NotFoundError{Entity: "company"}
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
)

// Business Logic Errors
var (
	ErrNotImplemented = errors.New("not implemented")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "These credentials do not match our records."}
	ErrSessionExpired     = &AuthenticationError{Message: "session has expired"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT secret is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is (or wraps) ValidationErrors
func IsValidation(err error) bool {
	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// AsValidation extracts ValidationErrors from an error chain
func AsValidation(err error) (ValidationErrors, bool) {
	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a ValidationErrors holding a single field error
func NewValidationError(field, message string) error {
	return ValidationErrors{{Field: field, Message: message}}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
