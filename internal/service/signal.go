package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/totegamma/logistics-backend/internal/domain"
)

const channelPrefix = "logistics:"

type SignalService struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewSignalService(redisClient *redis.Client, logger *zap.Logger) *SignalService {
	return &SignalService{
		rdb:    redisClient,
		logger: logger,
	}
}

// Channel is the pub/sub channel a change of kind is announced on.
func Channel(kind string) string {
	return channelPrefix + kind
}

func (s *SignalService) Publish(ctx context.Context, event domain.ChangeEvent) error {
	ctx, span := tracer.Start(ctx, "Signal.Service.Publish")
	defer span.End()

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, Channel(event.Kind), jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "publish change event")
	}

	return nil
}

// Realtime forwards change events whose kind starts with one of the most
// recently requested prefixes. Each value received on input replaces the
// previous subscription. output is closed when Realtime returns, which
// happens when ctx is done or input is closed.
func (s *SignalService) Realtime(ctx context.Context, input <-chan []string, output chan<- domain.ChangeEvent) {
	defer close(output)

	pubsub := s.rdb.PSubscribe(ctx)
	defer pubsub.Close()

	messages := pubsub.Channel()
	var current []string

	for {
		select {
		case <-ctx.Done():
			return
		case prefixes, ok := <-input:
			if !ok {
				return
			}
			next := Patterns(prefixes)
			if len(current) > 0 {
				if err := pubsub.PUnsubscribe(ctx, current...); err != nil {
					s.logger.Warn("realtime unsubscribe failed", zap.Error(err))
				}
			}
			if len(next) > 0 {
				if err := pubsub.PSubscribe(ctx, next...); err != nil {
					s.logger.Warn("realtime subscribe failed", zap.Error(err))
				}
			}
			current = next
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var event domain.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.logger.Debug("realtime message dropped", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Patterns turns requested kind prefixes into pub/sub patterns, dropping
// blanks, duplicates and pattern metacharacters.
func Patterns(prefixes []string) []string {
	seen := make(map[string]bool, len(prefixes))
	patterns := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" || strings.ContainsAny(p, `*?[]\`) || seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, channelPrefix+p+"*")
	}
	return patterns
}
