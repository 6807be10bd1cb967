// Package apierrors provides shared error types for the Caret client.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingWebhookSecret is returned when no webhook signing secret is provided.
	ErrMissingWebhookSecret = errors.New("webhook secret is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrPermissionDenied is returned when the API key lacks access to the resource.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNoteNotFound is returned when a note is not found.
	ErrNoteNotFound = errors.New("note not found")

	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")

	// ErrWorkspaceNotFound is returned when a workspace is not found.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = errors.New("webhook not found")

	// ErrConflict is returned when a resource already exists or is in a conflicting state.
	ErrConflict = errors.New("resource conflict")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Kind classifies an API error by its HTTP status code.
type Kind string

const (
	// KindBadRequest indicates a malformed request (400).
	KindBadRequest Kind = "bad_request"
	// KindAuthentication indicates a missing or invalid API key (401).
	KindAuthentication Kind = "authentication"
	// KindPermissionDenied indicates insufficient access (403).
	KindPermissionDenied Kind = "permission_denied"
	// KindNotFound indicates the resource does not exist (404).
	KindNotFound Kind = "not_found"
	// KindConflict indicates a state conflict (409).
	KindConflict Kind = "conflict"
	// KindUnprocessableEntity indicates a semantically invalid request (422).
	KindUnprocessableEntity Kind = "unprocessable_entity"
	// KindRateLimit indicates the rate limit was exceeded (429).
	KindRateLimit Kind = "rate_limit"
	// KindInternalServer indicates a server-side failure (500).
	KindInternalServer Kind = "internal_server"
	// KindGeneric covers every status code without a dedicated kind.
	KindGeneric Kind = "generic"
)

// Classify maps an HTTP status code to its error kind.
// Exactly one kind exists per mapped status; everything else is KindGeneric.
func Classify(statusCode int) Kind {
	switch statusCode {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusForbidden:
		return KindPermissionDenied
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnprocessableEntity:
		return KindUnprocessableEntity
	case http.StatusTooManyRequests:
		return KindRateLimit
	case http.StatusInternalServerError:
		return KindInternalServer
	default:
		return KindGeneric
	}
}

// Resource indicates which type of resource an error relates to.
type Resource string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown Resource = ""
	// ResourceNote indicates the error relates to a note.
	ResourceNote Resource = "note"
	// ResourceTag indicates the error relates to a tag.
	ResourceTag Resource = "tag"
	// ResourceWorkspace indicates the error relates to a workspace.
	ResourceWorkspace Resource = "workspace"
	// ResourceWebhook indicates the error relates to a webhook.
	ResourceWebhook Resource = "webhook"
)

// APIError represents an HTTP error response from the Caret API.
type APIError struct {
	StatusCode int
	Kind       Kind
	Message    string
	Code       string
	Details    string
	Errors     map[string]string
	RawBody    json.RawMessage
	Headers    http.Header
	RequestID  string
	Resource   Resource
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrPermissionDenied
	case 404:
		switch e.Resource {
		case ResourceNote:
			return target == ErrNoteNotFound
		case ResourceTag:
			return target == ErrTagNotFound
		case ResourceWorkspace:
			return target == ErrWorkspaceNotFound
		case ResourceWebhook:
			return target == ErrWebhookNotFound
		default:
			return target == ErrNoteNotFound || target == ErrTagNotFound ||
				target == ErrWorkspaceNotFound || target == ErrWebhookNotFound
		}
	case 409:
		return target == ErrConflict
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// WithResource returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResource(err error, r Resource) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		dup := *apiErr
		dup.Resource = r
		return &dup
	}
	return err
}

// NetworkError represents a transport-level failure that never produced
// an HTTP response to classify: connection refused, DNS failure, or an
// attempt that exceeded its timeout.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
