package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIterate_OrderAndCount(t *testing.T) {
	b := Bounds{
		XFrom: 0, XTo: 2, XStep: 1,
		YFrom: 0, YTo: 1, YStep: 1,
		ZFrom: 0, ZTo: 3, ZStep: 1,
	}

	type point struct{ x, z float64 }
	got := Iterate(b, func(x, y, z float64) point { return point{x, z} })

	want := []point{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	assert.Equal(t, want, got)
}

func TestIterate_EmptyAxis(t *testing.T) {
	b := Bounds{XFrom: 0, XTo: 0, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 1, ZStep: 1}
	got := Iterate(b, func(x, y, z float64) int { return 1 })
	assert.Empty(t, got)
}

func TestIterateLimited_NilLimiterMatchesIterate(t *testing.T) {
	b := Bounds{XFrom: 0, XTo: 2, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 2, ZStep: 1}
	want := Iterate(b, func(x, y, z float64) float64 { return x + z })
	got, err := IterateLimited(context.Background(), nil, b, nil, "test", func(x, y, z float64) float64 { return x + z })
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIterateLimited_CanceledContextStops(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := Bounds{XFrom: 0, XTo: 5, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 1, ZStep: 1}
	_, err := IterateLimited(ctx, limiter, b, nil, "test", func(x, y, z float64) int { return 1 })
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestIterateLimited_DeadlineExceeded(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0.001), 1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	b := Bounds{XFrom: 0, XTo: 10, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 1, ZStep: 1}
	_, err := IterateLimited(ctx, limiter, b, nil, "test", func(x, y, z float64) int { return 1 })
	assert.Error(t, err)
}
