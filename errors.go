package caret

import (
	"github.com/caret-so/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingWebhookSecret is returned when no webhook signing secret is provided.
	ErrMissingWebhookSecret = apierrors.ErrMissingWebhookSecret

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrPermissionDenied is returned when the API key lacks access to the resource.
	ErrPermissionDenied = apierrors.ErrPermissionDenied

	// ErrNoteNotFound is returned when a note is not found.
	ErrNoteNotFound = apierrors.ErrNoteNotFound

	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = apierrors.ErrTagNotFound

	// ErrWorkspaceNotFound is returned when a workspace is not found.
	ErrWorkspaceNotFound = apierrors.ErrWorkspaceNotFound

	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = apierrors.ErrWebhookNotFound

	// ErrConflict is returned when a resource already exists or is in a conflicting state.
	ErrConflict = apierrors.ErrConflict

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited
)

// APIError represents an HTTP error response from the Caret API. Use
// errors.As to extract it and inspect the status code, error kind, response
// headers, and request id.
type APIError = apierrors.APIError

// NetworkError represents a transport-level failure that exhausted retries
// without ever producing an HTTP response.
type NetworkError = apierrors.NetworkError

// ErrorKind classifies an APIError by its HTTP status code.
type ErrorKind = apierrors.Kind

// Error kinds carried by APIError.Kind.
const (
	ErrorKindBadRequest          = apierrors.KindBadRequest
	ErrorKindAuthentication      = apierrors.KindAuthentication
	ErrorKindPermissionDenied    = apierrors.KindPermissionDenied
	ErrorKindNotFound            = apierrors.KindNotFound
	ErrorKindConflict            = apierrors.KindConflict
	ErrorKindUnprocessableEntity = apierrors.KindUnprocessableEntity
	ErrorKindRateLimit           = apierrors.KindRateLimit
	ErrorKindInternalServer      = apierrors.KindInternalServer
	ErrorKindGeneric             = apierrors.KindGeneric
)
