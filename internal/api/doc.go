// Package api provides HTTP client functionality for communicating with the
// Caret API. It handles authentication, request/response serialization, and
// automatic retry with exponential backoff for transient failures.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// An API key is required, either explicitly or via the CARET_API_KEY
// environment variable (read once, at construction). The key is sent as a
// bearer token on every request.
//
// # Retry Behavior
//
// Each call makes up to MaxRetries+1 attempts. A 429 response is retried
// after the server's Retry-After delay, or with exponential backoff (1s,
// 2s, 4s, ...) when the header is absent. Transport failures that never
// produced an HTTP response — connection errors, DNS failures, attempt
// timeouts — are retried with the same exponential backoff. Any other
// HTTP error status propagates immediately without retrying.
//
// Backoff delays are uncapped; at the default MaxRetries of 3 the worst
// case adds 7 seconds before a transient failure is surfaced.
//
// # Error Handling
//
// Classified HTTP failures surface as [apierrors.APIError], carrying the
// status code, error kind, response headers, request id, and the original
// error body. Transport failures that exhaust retries surface as
// [apierrors.NetworkError]. Both work with errors.As, and APIError matches
// the package's sentinel errors via errors.Is.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Each call's retry loop is
// private to that call; one call's backoff never delays another.
package api
