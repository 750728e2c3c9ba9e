package grid

import (
	"context"
	"time"

	"multinoise/pkg/metrics"

	"golang.org/x/time/rate"
)

// IterateLimited is Iterate with an optional rate limit: when limiter is
// non-nil, each sample waits for a token before f runs, so a caller such as
// cmd/worldgen can bound a large bulk evaluation to a fixed samples/second
// rate. A nil limiter disables throttling entirely. operation labels the
// points and wait-time metrics recorded against m; m may be nil.
func IterateLimited[T any](ctx context.Context, limiter *rate.Limiter, b Bounds, m *metrics.Metrics, operation string, f func(x, y, z float64) T) ([]T, error) {
	xCount := axisCount(b.XFrom, b.XTo, b.XStep)
	yCount := axisCount(b.YFrom, b.YTo, b.YStep)
	zCount := axisCount(b.ZFrom, b.ZTo, b.ZStep)

	result := make([]T, 0, xCount*yCount*zCount)
	for x := 0; x < xCount; x++ {
		xx := float64(x)*b.XStep + b.XFrom
		for y := 0; y < yCount; y++ {
			yy := float64(y)*b.YStep + b.YFrom
			for z := 0; z < zCount; z++ {
				zz := float64(z)*b.ZStep + b.ZFrom
				if limiter != nil {
					waitStart := time.Now()
					if err := limiter.Wait(ctx); err != nil {
						return nil, err
					}
					m.RecordGridWait(time.Since(waitStart))
				}
				result = append(result, f(xx, yy, zz))
			}
		}
	}
	m.RecordGridPoints(operation, len(result))
	return result, nil
}
