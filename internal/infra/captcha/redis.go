// Package captcha enforces single use of recaptcha tokens. Verification of
// the token against the captcha provider happens in the platform backend;
// this registry only guarantees a token the checkout has seen once is never
// accepted again, including retries after a failed attempt.
package captcha

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"learnscape-checkout/internal/pkg/config"
	"learnscape-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type Registry struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRegistry(rdb *redis.Client, cfg config.RedisConfig) *Registry {
	return &Registry{
		rdb: rdb,
		ttl: cfg.TokenTTL,
	}
}

// Consume marks the token used. The TTL only needs to outlive the token's
// own validity window at the captcha provider.
func (r *Registry) Consume(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrCaptchaTokenRequired
	}

	ok, err := r.rdb.SetNX(ctx, key(token), 1, r.ttl).Result()
	if err != nil {
		return errs.Wrap(err, "captcha token registry")
	}
	if !ok {
		return errs.ErrCaptchaTokenConsumed
	}
	return nil
}

// Tokens are long and caller-supplied; store a digest, not the raw value.
func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "checkout:captcha:" + hex.EncodeToString(sum[:])
}
