package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/totegamma/logistics-backend/internal/domain"
)

var tracer = otel.Tracer("usecase")

// Effects bundles what happens around a successful write: the change
// event, cache invalidation and the clock used for audit stamps.
// Every field is optional.
type Effects struct {
	Publisher EventPublisher
	Cache     DetailCache
	Logger    *zap.Logger
	Now       func() time.Time
}

// now is truncated to microseconds, the resolution of a postgres timestamptz.
func (e Effects) now() time.Time {
	if e.Now != nil {
		return e.Now().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (e Effects) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.NewNop()
}

// changed invalidates the cached root and publishes the event. Neither
// failure fails the write that already happened.
func (e Effects) changed(ctx context.Context, root domain.Kind, event domain.ChangeEvent) {
	if e.Cache != nil {
		if err := e.Cache.Delete(ctx, cacheKey(root, event.RootID)); err != nil {
			e.logger().Warn("cache invalidation failed",
				zap.String("kind", root.Name),
				zap.String("id", event.RootID),
				zap.Error(err),
			)
		}
	}

	if e.Publisher == nil {
		return
	}
	event.Actor = domain.ActorFrom(ctx)
	event.At = e.now()
	if err := e.Publisher.Publish(ctx, event); err != nil {
		e.logger().Warn("publish change event failed",
			zap.String("kind", event.Kind),
			zap.String("id", event.ID),
			zap.Error(err),
		)
	}
}

// cached reads key into dst, reporting a hit. Cache failures count as misses.
func (e Effects) cached(ctx context.Context, kind domain.Kind, id string, dst any) bool {
	if e.Cache == nil {
		return false
	}
	hit, err := e.Cache.Get(ctx, cacheKey(kind, id), dst)
	if err != nil {
		e.logger().Debug("cache read failed", zap.String("kind", kind.Name), zap.Error(err))
		return false
	}
	return hit
}

func (e Effects) remember(ctx context.Context, kind domain.Kind, id string, value any) {
	if e.Cache == nil {
		return
	}
	if err := e.Cache.Set(ctx, cacheKey(kind, id), value); err != nil {
		e.logger().Debug("cache write failed", zap.String("kind", kind.Name), zap.Error(err))
	}
}

func cacheKey(kind domain.Kind, id string) string {
	return kind.Name + ":" + id
}
