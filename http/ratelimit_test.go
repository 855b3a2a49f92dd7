package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/paperpress/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_ThrottlesWithinDomain(t *testing.T) {
	t.Parallel()

	limiter := http.NewDomainLimiter(10) // 10 rps, so ~100ms between requests

	ctx := context.Background()
	begin := time.Now()
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	require.NoError(t, limiter.Wait(ctx, "example.com"))
	elapsed := time.Since(begin)

	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestDomainLimiter_DomainsAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := http.NewDomainLimiter(1) // slow limiter: 1 rps per domain

	ctx := context.Background()
	begin := time.Now()
	require.NoError(t, limiter.Wait(ctx, "a.example.com"))
	require.NoError(t, limiter.Wait(ctx, "b.example.com"))
	require.NoError(t, limiter.Wait(ctx, "c.example.com"))
	elapsed := time.Since(begin)

	// First request to each domain consumes that domain's initial burst.
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestDomainLimiter_WaitHonorsContext(t *testing.T) {
	t.Parallel()

	limiter := http.NewDomainLimiter(0.001)

	ctx := context.Background()
	require.NoError(t, limiter.Wait(ctx, "example.com"))

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "example.com")
	require.Error(t, err)
}
