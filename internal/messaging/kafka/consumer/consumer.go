package consumer

import (
	"context"
	"net/http"
	"time"

	"cadebeck-hr/internal/messaging/kafka"
	"cadebeck-hr/internal/shared/apperror"
	"cadebeck-hr/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HandlerFunc processes one message. A transient error is retried on the
// same message; a permanent one commits the message and moves on.
type HandlerFunc func(ctx context.Context, msg kafkago.Message) error

const (
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 30 * time.Second
)

type options struct {
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

type Option func(*options)

// WithBackoff sets the delay before the first retry and its cap. The delay
// doubles between attempts.
func WithBackoff(initial, max time.Duration) Option {
	return func(o *options) {
		o.initialBackoff = initial
		o.maxBackoff = max
	}
}

// Run fetches and handles messages until ctx is done. A message is committed
// only after it succeeds or fails permanently (malformed payload, client
// error), so offsets never move past a message that still needs work.
func Run(ctx context.Context, reader MessageReader, handle HandlerFunc, log *zap.Logger, opts ...Option) {
	o := options{initialBackoff: defaultInitialBackoff, maxBackoff: defaultMaxBackoff}
	for _, opt := range opts {
		opt(&o)
	}

	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if !handleUntilSettled(ctx, msg, handle, log, o) {
			log.Info("consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

// handleUntilSettled retries msg until it succeeds or fails permanently. It
// reports false when ctx ended first.
func handleUntilSettled(ctx context.Context, msg kafkago.Message, handle HandlerFunc, log *zap.Logger, o options) bool {
	msgCtx := contextutil.WithRequestID(ctx, header(msg, kafka.HeaderRequestID))
	backoff := o.initialBackoff

	for attempt := 1; ; attempt++ {
		err := handle(msgCtx, msg)
		if err == nil {
			return true
		}
		if isPermanent(err) {
			log.Warn("skipping message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			return true
		}

		log.Error("handle message failed, retrying",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		backoff *= 2
		if backoff > o.maxBackoff {
			backoff = o.maxBackoff
		}
	}
}

type decodeError struct {
	err error
}

func (e decodeError) Error() string {
	return "decode message: " + e.err.Error()
}

func (e decodeError) Unwrap() error {
	return e.err
}

func isPermanent(err error) bool {
	if _, ok := err.(decodeError); ok {
		return true
	}
	status := apperror.ToHTTP(err).Status
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
