package ratelimit

import (
	"context"
	"time"
)

// Result describes one rate limit decision.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
