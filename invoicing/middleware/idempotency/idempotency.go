// Package idempotency implements the transport-level retry guard for
// mutating endpoints tagged idempotency. It caches responses keyed by the
// caller's X-Idempotency-Key so a retried request after a dropped response
// replays the original outcome instead of re-executing it. The ledger adds
// its own domain-level txid idempotency underneath; this middleware exists
// so that even non-ledger mutations (invoice creation) tolerate retries.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

const IdempotencyHeader = "X-Idempotency-Key"

const (
	entryStatusProcessing = "processing"
	entryStatusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := requestBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := Cache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return processNewRequest(req, next, cacheKey, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, key)
}

// processNewRequest marks the key as in flight, runs the handler and caches
// the response. A failed handler clears the entry so the caller may retry.
func processNewRequest(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := Cache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:          entryStatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"},
		}
	}

	response := next(req)

	if response.Err != nil {
		clearEntry(req.Context(), cacheKey)
	} else {
		storeCompleted(req.Context(), cacheKey, bodyHash, response)
	}

	return response
}

// handleExistingEntry replays or rejects a request whose key was seen before.
func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case entryStatusProcessing:
		rlog.Info("concurrent request with same idempotency key", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case entryStatusCompleted:
		return replayCompleted(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// replayCompleted reconstructs the cached response in the endpoint's
// response type. A corrupted cache entry falls through to re-execution.
func replayCompleted(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				rlog.Info("replaying cached response", "key", key)
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}

	return next(req)
}

// extractIdempotencyKey reads and validates the idempotency key header
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return key, nil
}

// requestBodyHash hashes the request body for conflict detection
func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := Cache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear idempotency entry", "error", err)
	}
}

func storeCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          entryStatusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payload
	}

	if err := Cache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache completed response", "error", err)
	}
}
