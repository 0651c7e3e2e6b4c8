package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one retryable request: the resource path plus
// the caller-supplied X-Idempotency-Key value.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// IdempotencyCacheEntry is the cached record of a request keyed by
// IdempotencyKey: its processing state, a hash of the original body for
// conflict detection, and the response to replay once completed.
type IdempotencyCacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
