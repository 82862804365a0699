package rms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrorKind identifies one member of the error taxonomy reported by the
// request engine. The set is closed: every failed call surfaces exactly one
// kind.
type ErrorKind string

const (
	// ErrorKindConnection covers connection refusal, DNS and TLS failures.
	ErrorKindConnection ErrorKind = "connection"
	// ErrorKindTimeout covers requests that exceeded the configured timeout.
	ErrorKindTimeout ErrorKind = "timeout"
	// ErrorKindAuthentication maps HTTP 401.
	ErrorKindAuthentication ErrorKind = "authentication"
	// ErrorKindPermission maps HTTP 403.
	ErrorKindPermission ErrorKind = "permission"
	// ErrorKindNotFound maps HTTP 404.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindValidation maps HTTP 422 and carries field errors.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindConflict maps HTTP 409.
	ErrorKindConflict ErrorKind = "conflict"
	// ErrorKindRateLimit maps HTTP 429 and carries the Retry-After hint.
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindServer maps any 5xx response.
	ErrorKindServer ErrorKind = "server"
	// ErrorKindAPI is the generic fallback for any other status >= 400.
	ErrorKindAPI ErrorKind = "api"
)

// Error is the typed error reported for any failed API call. Kind and
// Message are always set; StatusCode is set for errors derived from an HTTP
// response; FieldErrors is set if and only if Kind is ErrorKindValidation.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// FieldErrors maps an input field name to the ordered validation
	// messages the backend reported for it.
	FieldErrors map[string][]string
	// RetryAfter is the parsed Retry-After hint on rate-limit errors,
	// zero when the backend did not send one.
	RetryAfter time.Duration

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("rms: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("rms: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any (network errors keep the
// originating transport error).
func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the engine's retry policy may re-attempt a
// request that failed with this error.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case ErrorKindConnection, ErrorKindTimeout, ErrorKindServer:
		return true
	default:
		return false
	}
}

// Static errors for input validation performed before any request is sent.
var (
	ErrTokenRequired      = errors.New("access token is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrIDOrFilterRequired = errors.New("either an id or filter parameters must be provided")
	ErrNoMatch            = errors.New("no items found matching the criteria")
	ErrMultipleMatches    = errors.New("multiple items found, use Filter to get all results or be more specific")
	ErrEmptyResponse      = errors.New("empty response from API")
	ErrNoMoreItems        = errors.New("no more items")
	ErrInvalidFilter      = errors.New("invalid filter parameters")
	ErrMissingField       = errors.New("missing required fields")
)

// NewConnectionError builds a connection-kind error wrapping the transport
// failure.
func NewConnectionError(message string, cause error) *Error {
	return &Error{Kind: ErrorKindConnection, Message: message, cause: cause}
}

// NewTimeoutError builds a timeout-kind error wrapping the transport failure.
func NewTimeoutError(message string, cause error) *Error {
	return &Error{Kind: ErrorKindTimeout, Message: message, cause: cause}
}

// errorBody is the backend's error payload shape. The errors object is kept
// raw because the backend emits both {"field": ["msg"]} and {"field": "msg"}.
type errorBody struct {
	Message string          `json:"message"`
	Err     string          `json:"error"`
	Detail  string          `json:"detail"`
	Errors  json.RawMessage `json:"errors"`
}

// ClassifyResponse maps a completed non-2xx response onto the taxonomy.
// body may be nil or malformed; classification never fails.
func ClassifyResponse(statusCode int, header http.Header, body []byte) *Error {
	parsed := parseErrorBody(body)

	apiErr := &Error{
		StatusCode: statusCode,
		Message:    parsed.bestMessage(statusCode, body),
	}

	switch {
	case statusCode == 401:
		apiErr.Kind = ErrorKindAuthentication
	case statusCode == 403:
		apiErr.Kind = ErrorKindPermission
	case statusCode == 404:
		apiErr.Kind = ErrorKindNotFound
	case statusCode == 409:
		apiErr.Kind = ErrorKindConflict
	case statusCode == 422:
		apiErr.Kind = ErrorKindValidation
		apiErr.FieldErrors = parseFieldErrors(parsed.Errors)
	case statusCode == 429:
		apiErr.Kind = ErrorKindRateLimit
		apiErr.RetryAfter = parseRetryAfter(header)
	case statusCode >= 500:
		apiErr.Kind = ErrorKindServer
	default:
		apiErr.Kind = ErrorKindAPI
	}

	return apiErr
}

func parseErrorBody(body []byte) *errorBody {
	parsed := &errorBody{}
	if len(body) == 0 {
		return parsed
	}

	// Malformed payloads still classify; the raw text becomes the message.
	_ = json.Unmarshal(body, parsed)

	return parsed
}

// bestMessage extracts a human-readable message with the priority
// message > error > detail > raw body > per-status default.
func (b *errorBody) bestMessage(statusCode int, raw []byte) string {
	switch {
	case b.Message != "":
		return b.Message
	case b.Err != "":
		return b.Err
	case b.Detail != "":
		return b.Detail
	}

	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}

	return defaultMessage(statusCode)
}

func defaultMessage(statusCode int) string {
	switch statusCode {
	case 401:
		return "Authentication failed"
	case 403:
		return "Permission denied"
	case 404:
		return "Resource not found"
	case 409:
		return "Conflict"
	case 422:
		return "Validation error"
	case 429:
		return "Too many requests"
	default:
		return fmt.Sprintf("API error: %d", statusCode)
	}
}

// parseFieldErrors decodes the backend's errors object into field -> ordered
// messages. Single-string values are promoted to one-element lists; anything
// unparseable yields an empty (non-nil) map so validation errors are never
// partially populated.
func parseFieldErrors(raw json.RawMessage) map[string][]string {
	fieldErrors := make(map[string][]string)
	if len(raw) == 0 {
		return fieldErrors
	}

	var asLists map[string][]string
	if err := json.Unmarshal(raw, &asLists); err == nil {
		return asLists
	}

	var asMixed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asMixed); err != nil {
		return fieldErrors
	}

	for field, value := range asMixed {
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			fieldErrors[field] = []string{single}

			continue
		}

		var many []string
		if err := json.Unmarshal(value, &many); err == nil {
			fieldErrors[field] = many
		}
	}

	return fieldErrors
}

func parseRetryAfter(header http.Header) time.Duration {
	value := strings.TrimSpace(header.Get("Retry-After"))
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	return 0
}

// IsNotFound checks if the error is a not-found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return hasKind(err, ErrorKindAuthentication)
}

// IsPermission checks if the error is a permission error.
func IsPermission(err error) bool {
	return hasKind(err, ErrorKindPermission)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return hasKind(err, ErrorKindValidation)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return hasKind(err, ErrorKindConflict)
}

// IsRateLimit checks if the error is a rate-limit error.
func IsRateLimit(err error) bool {
	return hasKind(err, ErrorKindRateLimit)
}

// IsServer checks if the error is a server-side (5xx) error.
func IsServer(err error) bool {
	return hasKind(err, ErrorKindServer)
}

// IsConnection checks if the error is a network connection error.
func IsConnection(err error) bool {
	return hasKind(err, ErrorKindConnection)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	return hasKind(err, ErrorKindTimeout)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
