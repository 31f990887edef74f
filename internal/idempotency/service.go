// Package idempotency replays the stored response of a request that carries
// an Idempotency-Key the service has already answered.
package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ads-billing/internal/clients/redis"
	"ads-billing/internal/observability"
)

const HeaderKey = "Idempotency-Key"

// Response is a cached reply.
type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Service stores responses in redis keyed by scope and Idempotency-Key.
// A nil or disabled redis client turns every call into a miss.
type Service struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

func NewService(redis *redis.Client, ttl time.Duration, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(scope, key string) string {
	return fmt.Sprintf("idem:%s:%s", scope, key)
}

// Lookup returns the cached response for key, if any.
func (s *Service) Lookup(ctx context.Context, scope, key string) (Response, bool, error) {
	if !s.redis.IsEnabled() {
		return Response{}, false, nil
	}

	raw, ok, err := s.redis.Get(ctx, cacheKey(scope, key))
	if err != nil {
		return Response{}, false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if !ok {
		return Response{}, false, nil
	}

	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return Response{}, false, fmt.Errorf("failed to decode cached response: %w", err)
	}
	return resp, true, nil
}

// Store caches resp under key for the configured ttl.
func (s *Service) Store(ctx context.Context, scope, key string, resp Response) error {
	if !s.redis.IsEnabled() {
		return nil
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.redis.Set(ctx, cacheKey(scope, key), raw, s.ttl); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}
