package errs

import "strings"

// FieldError describes a validation problem on a single input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType enumerates instructions a client can act on.
type ActionType string

const (
	// ActionTypeRedirect tells the client to navigate elsewhere; Value
	// carries the target URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional "what to do next" hint attached to an error,
// e.g. redirect to the login page when a session expires.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error envelope serialized to API clients.
//
// Code is a stable machine-readable identifier (e.g. "USER_ALREADY_EXISTS"),
// Message is for humans, Status is the HTTP status code. Override signals
// that the message is safe to display verbatim in a UI.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, typically for form input.
	Errors []FieldError `json:"errors"`

	// Action is an optional client instruction.
	Action *Action `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It matches on type only,
// not on Code or Status, so errors.Is(err, &HTTPError{}) answers "was this
// already shaped for the client?".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with only the message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts text like "Bad Request" into a
// stable code like "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
