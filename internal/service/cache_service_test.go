package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCacheServiceDisabled(t *testing.T) {
	svc := NewCacheService(nil, time.Minute, zap.NewNop(), false)

	var dest string
	assert.False(t, svc.Enabled())
	assert.False(t, svc.Get(context.Background(), "k", &dest))
	// No repository behind it; these must not panic.
	svc.Set(context.Background(), "k", "v")
	svc.Invalidate(context.Background(), "k")
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := &fakeCacheRepo{}
	svc := newTestCache(repo)

	var dest string
	assert.False(t, svc.Get(context.Background(), "k", &dest))

	svc.Set(context.Background(), "k", "v")
	assert.True(t, svc.Get(context.Background(), "k", &dest))
	assert.Equal(t, "v", dest)

	svc.Invalidate(context.Background(), "k")
	assert.False(t, svc.Get(context.Background(), "k", &dest))
}
