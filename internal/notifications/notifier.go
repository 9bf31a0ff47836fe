// Package notifications provides real-time notification delivery to connected users.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"

	"careerflow/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const (
	userChannelPrefix  = "notifications:user:"
	userChannelPattern = userChannelPrefix + "*"
)

// EventNotification is the websocket event type carrying a stored notification.
const EventNotification = "notification"

// Event is the JSON envelope pushed to websocket clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Notifier provides helpers to publish notifications into Redis channels.
type Notifier struct {
	rdb   *redis.Client
	local func(userID uint, payload string)
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// SetLocalDelivery registers fn to receive payloads directly when Redis is unavailable,
// so a single instance still pushes to its own sockets.
func (n *Notifier) SetLocalDelivery(fn func(userID uint, payload string)) {
	n.local = fn
}

// PublishUser sends a notification payload to a user's channel.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, payload string) error {
	if n.rdb == nil {
		if n.local != nil {
			n.local(userID, payload)
		}
		return nil
	}
	return n.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// PublishEvent marshals an Event and publishes it to the user's channel.
func (n *Notifier) PublishEvent(ctx context.Context, userID uint, eventType string, payload any) error {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return n.PublishUser(ctx, userID, string(data))
}

// StartPatternSubscriber subscribes to `notifications:user:*` and calls onMessage
// for each incoming message until ctx is cancelled.
func (n *Notifier) StartPatternSubscriber(ctx context.Context, onMessage func(channel string, payload string)) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, userChannelPattern)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe %s: %w", userChannelPattern, err)
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("panic in notification subscriber",
								slog.Any("panic", r),
								slog.String("stack", string(debug.Stack())),
							)
						}
					}()
					onMessage(msg.Channel, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uint) string {
	return userChannelPrefix + strconv.FormatUint(uint64(userID), 10)
}

// ParseUserChannel extracts the user id from a channel produced by UserChannel.
func ParseUserChannel(channel string) (uint, bool) {
	raw, ok := strings.CutPrefix(channel, userChannelPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
