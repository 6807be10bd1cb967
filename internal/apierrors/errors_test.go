package apierrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		statusCode int
		want       Kind
	}{
		{400, KindBadRequest},
		{401, KindAuthentication},
		{403, KindPermissionDenied},
		{404, KindNotFound},
		{409, KindConflict},
		{422, KindUnprocessableEntity},
		{429, KindRateLimit},
		{500, KindInternalServer},
		{402, KindGeneric},
		{418, KindGeneric},
		{502, KindGeneric},
		{503, KindGeneric},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.statusCode), func(t *testing.T) {
			if got := Classify(tt.statusCode); got != tt.want {
				t.Errorf("Classify(%d) = %q, want %q", tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with message",
			err:      &APIError{StatusCode: 404, Message: "note not found"},
			expected: "API error 404: note not found",
		},
		{
			name:     "with request id",
			err:      &APIError{StatusCode: 500, RequestID: "req_123"},
			expected: "API error 500 (request_id: req_123)",
		},
		{
			name:     "with message and request id",
			err:      &APIError{StatusCode: 429, Message: "rate limit exceeded", RequestID: "req_456"},
			expected: "API error 429: rate limit exceeded (request_id: req_456)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		target error
		want   bool
	}{
		{"401 matches unauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"403 matches permission denied", &APIError{StatusCode: 403}, ErrPermissionDenied, true},
		{"404 note resource", &APIError{StatusCode: 404, Resource: ResourceNote}, ErrNoteNotFound, true},
		{"404 note resource does not match tag", &APIError{StatusCode: 404, Resource: ResourceNote}, ErrTagNotFound, false},
		{"404 tag resource", &APIError{StatusCode: 404, Resource: ResourceTag}, ErrTagNotFound, true},
		{"404 webhook resource", &APIError{StatusCode: 404, Resource: ResourceWebhook}, ErrWebhookNotFound, true},
		{"404 unknown resource matches any", &APIError{StatusCode: 404}, ErrNoteNotFound, true},
		{"409 matches conflict", &APIError{StatusCode: 409}, ErrConflict, true},
		{"429 matches rate limited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"400 matches nothing", &APIError{StatusCode: 400}, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithResource(t *testing.T) {
	base := &APIError{StatusCode: 404, Message: "not found"}

	tagged := WithResource(base, ResourceNote)

	var apiErr *APIError
	if !errors.As(tagged, &apiErr) {
		t.Fatalf("WithResource() = %T, want *APIError", tagged)
	}
	if apiErr.Resource != ResourceNote {
		t.Errorf("Resource = %q, want %q", apiErr.Resource, ResourceNote)
	}
	// Original is left untouched.
	if base.Resource != ResourceUnknown {
		t.Errorf("base.Resource = %q, want unchanged", base.Resource)
	}
}

func TestWithResource_PassThrough(t *testing.T) {
	if got := WithResource(nil, ResourceNote); got != nil {
		t.Errorf("WithResource(nil) = %v, want nil", got)
	}

	plain := errors.New("boom")
	if got := WithResource(plain, ResourceNote); got != plain {
		t.Errorf("WithResource(plain) = %v, want the error unchanged", got)
	}
}

func TestNetworkError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &NetworkError{Err: underlying, URL: "https://api.caret.so/v1/notes", Attempt: 3}

	if err.Error() != "network error: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is(err, underlying) = false, want true")
	}
}
