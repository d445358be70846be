package cache

import (
	"context"
	"time"
)

// Cache — общий интерфейс реализаций кэша.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

var (
	_ Cache = (*Redis)(nil)
	_ Cache = (*Memory)(nil)
)
