package service

import (
	"context"
	"log/slog"

	"careerflow/internal/middleware"
	"careerflow/internal/observability"
)

// Side effect channels.
const (
	ChannelNotification = "notification"
	ChannelRealtime     = "realtime"
	ChannelEmail        = "email"
)

// EventPublisher pushes an event to a user's realtime channel.
type EventPublisher interface {
	PublishEvent(ctx context.Context, userID uint, eventType string, payload any) error
}

// DeliveryResult is the outcome of one best-effort side effect.
type DeliveryResult struct {
	Channel string
	Err     error
}

// Delivered reports whether the side effect succeeded.
func (r DeliveryResult) Delivered() bool { return r.Err == nil }

func attempt(channel string, fn func() error) DeliveryResult {
	return DeliveryResult{Channel: channel, Err: fn()}
}

// reportDeliveries counts every result and logs the failures. It never returns an error.
func reportDeliveries(ctx context.Context, operation string, results []DeliveryResult) {
	for _, r := range results {
		observability.SideEffectDeliveries.WithLabelValues(r.Channel, observability.Outcome(r.Err)).Inc()
		if r.Err != nil {
			middleware.Logger.WarnContext(ctx, "best-effort delivery failed",
				slog.String("operation", operation),
				slog.String("channel", r.Channel),
				slog.String("error", r.Err.Error()),
			)
		}
	}
}
