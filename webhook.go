package caret

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// SignatureHeader is the request header carrying the webhook signature:
// the lowercase-hex HMAC-SHA256 of the raw request body, keyed by the
// webhook's signing secret.
const SignatureHeader = "X-Caret-Signature"

// EnvWebhookSecret is the environment variable consulted when no signing
// secret is passed to NewWebhookVerifier. It is read once, at construction.
const EnvWebhookSecret = "CARET_WEBHOOK_SECRET"

// WebhookEvent is the envelope of an inbound webhook delivery.
type WebhookEvent struct {
	Type        WebhookEventType `json:"type"`
	EventID     string           `json:"eventId"`
	WebhookID   string           `json:"webhookId"`
	WorkspaceID string           `json:"workspaceId"`
	Timestamp   time.Time        `json:"timestamp"`
	Payload     json.RawMessage  `json:"payload"`
}

// DecodePayload decodes the event-specific payload into v.
//
// The payload shape is not checked against the event's Type field: decoding
// into a type that does not match the delivered event succeeds as long as
// the JSON is structurally compatible. Callers should branch on Type before
// decoding.
func (e *WebhookEvent) DecodePayload(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("event %s has no payload", e.EventID)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// VerificationResult is the outcome of verifying one webhook delivery.
// Verification never surfaces errors as panics or returned error values;
// every failure mode collapses into Valid=false with a human-readable
// Error string, so handlers can branch without error plumbing.
type VerificationResult struct {
	// Valid reports whether the delivery's signature is authentic and the
	// body parsed as a webhook event.
	Valid bool
	// Event is the parsed event, set only when Valid is true.
	Event *WebhookEvent
	// Error describes why verification failed, set only when Valid is false.
	Error string
}

// WebhookVerifier authenticates inbound webhook deliveries.
type WebhookVerifier struct {
	secret []byte
}

// NewWebhookVerifier creates a verifier for the given signing secret. When
// secret is empty, the CARET_WEBHOOK_SECRET environment variable is
// consulted (once, at construction); if neither is set, it returns
// ErrMissingWebhookSecret.
func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	if secret == "" {
		secret = os.Getenv(EnvWebhookSecret)
	}
	if secret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &WebhookVerifier{secret: []byte(secret)}, nil
}

// Verify reports whether signature is the lowercase-hex HMAC-SHA256 of
// payload under the verifier's secret. The comparison is constant-time.
// Malformed hex and length mismatches return false; Verify never panics.
func (v *WebhookVerifier) Verify(payload []byte, signature string) bool {
	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return hmac.Equal(supplied, mac.Sum(nil))
}

// VerifyRequest verifies an inbound webhook HTTP request: it reads the
// signature header, reads the full body, checks the signature over the
// exact raw bytes, and parses the body into a WebhookEvent.
//
// When the signature header is absent the body is not read, so the caller
// may still consume it.
func (v *WebhookVerifier) VerifyRequest(r *http.Request) *VerificationResult {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return &VerificationResult{Error: fmt.Sprintf("Missing %s header", SignatureHeader)}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return &VerificationResult{Error: err.Error()}
	}

	if !v.Verify(body, signature) {
		return &VerificationResult{Error: "Invalid signature"}
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return &VerificationResult{Error: err.Error()}
	}

	return &VerificationResult{Valid: true, Event: &event}
}
