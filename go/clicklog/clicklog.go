// Package clicklog is the durable click transport: a NATS JetStream stream
// with one subject per tile, a synchronous publisher, and durable pull
// consumers with explicit acknowledgement. It is the at-least-once leg of
// the pipeline; consumers are expected to be replay-idempotent.
package clicklog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// StreamName is the JetStream stream holding all click events.
	StreamName = "CLICKS"

	// SubjectPrefix is followed by the decimal tile id, so ordering is
	// per-tile and the consumer can recover the tile id from the subject.
	SubjectPrefix = "clicks.tile."

	subjectWildcard = SubjectPrefix + "*"

	// maxAge bounds retention; overflow discards oldest.
	maxAge = 8 * time.Hour

	dialMaxElapsed = 2 * time.Minute
)

var consumedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clicklog_consumed_messages_total",
	Help: "Messages pulled from the click log, by consumer and outcome.",
}, []string{"consumer", "outcome"})

// SubjectForTile returns the publish subject for a tile.
func SubjectForTile(tileID uint32) string {
	return SubjectPrefix + strconv.FormatUint(uint64(tileID), 10)
}

// TileIDFromSubject recovers the tile id from a click subject.
func TileIDFromSubject(subject string) (uint32, error) {
	raw, ok := strings.CutPrefix(subject, SubjectPrefix)
	if !ok {
		return 0, errors.Errorf("subject %q is not a click subject", subject)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "subject %q carries no tile id", subject)
	}
	return uint32(id), nil
}

// Dial connects to NATS, retrying with jittered exponential backoff so the
// process survives a broker that is still coming up. It gives up after
// dialMaxElapsed.
func Dial(ctx context.Context, natsURL string, log *zap.SugaredLogger) (*nats.Conn, error) {
	var nc *nats.Conn
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = dialMaxElapsed
	err := backoff.Retry(func() error {
		var err error
		nc, err = nats.Connect(natsURL, nats.Name("clickplanet"))
		if err != nil {
			log.Warnf("NATS dial failed, will retry: %s", err)
		}
		return err
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to NATS at %q", natsURL)
	}
	return nc, nil
}

// Log wraps a JetStream context for the CLICKS stream.
type Log struct {
	js  nats.JetStreamContext
	log *zap.SugaredLogger
}

// New builds a Log on an existing connection and ensures the stream exists
// with the expected configuration. Stream creation failure is fatal to the
// caller; nothing in the pipeline works without it.
func New(nc *nats.Conn, log *zap.SugaredLogger) (*Log, error) {
	js, err := nc.JetStream()
	if err != nil {
		return nil, errors.Wrap(err, "obtaining JetStream context")
	}
	l := &Log{js: js, log: log}
	if err := l.ensureStream(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Log) ensureStream() error {
	cfg := &nats.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{subjectWildcard},
		Retention: nats.LimitsPolicy,
		MaxAge:    maxAge,
		Discard:   nats.DiscardOld,
		Storage:   nats.FileStorage,
	}
	_, err := l.js.StreamInfo(StreamName)
	if errors.Is(err, nats.ErrStreamNotFound) {
		if _, err := l.js.AddStream(cfg); err != nil {
			return errors.Wrapf(err, "creating stream %s", StreamName)
		}
		l.log.Infof("Created stream %s (%s, max age %s)", StreamName, subjectWildcard, maxAge)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "looking up stream %s", StreamName)
	}
	if _, err := l.js.UpdateStream(cfg); err != nil {
		return errors.Wrapf(err, "updating stream %s", StreamName)
	}
	return nil
}

// Publish appends a click payload to the tile's subject. It returns only
// after JetStream has durably accepted the message.
func (l *Log) Publish(ctx context.Context, tileID uint32, payload []byte) error {
	if _, err := l.js.Publish(SubjectForTile(tileID), payload, nats.Context(ctx)); err != nil {
		return errors.Wrapf(err, "publishing click for tile %d", tileID)
	}
	return nil
}

// Handler processes one message pulled from the log. Returning nil
// acknowledges the message. What a non-nil error does depends on
// ConsumerConfig.AckOnError.
type Handler func(ctx context.Context, subject string, payload []byte) error

// ConsumerConfig tunes a durable pull consumer.
type ConsumerConfig struct {
	// Name is the durable name; consumers with distinct names have
	// independent cursors on the stream.
	Name string

	// AckWait is how long the server waits for an ack before redelivering.
	AckWait time.Duration

	// MaxDeliver caps redeliveries of one message.
	MaxDeliver int

	// Workers is the number of concurrent handler goroutines.
	Workers int

	// FetchBatch is how many messages one worker pulls per round trip.
	FetchBatch int

	// AckOnError acknowledges messages whose handler failed instead of
	// letting them redeliver. Correct for replay-idempotent consumers that
	// prefer missing one update over a redelivery storm.
	AckOnError bool
}

// DefaultConsumerConfig returns the tuning the original deployment ran with.
func DefaultConsumerConfig(name string) ConsumerConfig {
	return ConsumerConfig{
		Name:       name,
		AckWait:    30 * time.Second,
		MaxDeliver: 3,
		Workers:    4,
		FetchBatch: 16,
		AckOnError: true,
	}
}

// Consume runs a durable pull consumer until ctx is cancelled. Workers fetch
// batches independently so one slow message cannot stall the rest beyond its
// batch. In-flight messages are handled and acked before Consume returns.
func (l *Log) Consume(ctx context.Context, cfg ConsumerConfig, handler Handler) error {
	sub, err := l.js.PullSubscribe(
		subjectWildcard,
		cfg.Name,
		nats.BindStream(StreamName),
		nats.AckExplicit(),
		nats.AckWait(cfg.AckWait),
		nats.MaxDeliver(cfg.MaxDeliver),
	)
	if err != nil {
		return errors.Wrapf(err, "creating durable consumer %q", cfg.Name)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			l.log.Warnf("Unsubscribing consumer %q: %s", cfg.Name, err)
		}
	}()
	l.log.Infof("Consumer %q started (%d workers, ack wait %s, max deliver %d)", cfg.Name, cfg.Workers, cfg.AckWait, cfg.MaxDeliver)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Workers; i++ {
		eg.Go(func() error {
			for {
				if ctx.Err() != nil {
					return nil
				}
				msgs, err := sub.Fetch(cfg.FetchBatch, nats.Context(ctx))
				if err != nil {
					if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
						return nil
					}
					// Empty queue shows up as a timeout; not an error.
					if !errors.Is(err, nats.ErrTimeout) {
						l.log.Warnf("Consumer %q fetch: %s", cfg.Name, err)
					}
					continue
				}
				for _, msg := range msgs {
					l.handleMessage(ctx, cfg, handler, msg)
				}
			}
		})
	}
	return eg.Wait()
}

func (l *Log) handleMessage(ctx context.Context, cfg ConsumerConfig, handler Handler, msg *nats.Msg) {
	if err := handler(ctx, msg.Subject, msg.Data); err != nil {
		l.log.Errorf("Consumer %q handling %s: %s", cfg.Name, msg.Subject, err)
		if cfg.AckOnError {
			consumedMessages.WithLabelValues(cfg.Name, "acked_error").Inc()
			if err := msg.Ack(); err != nil {
				l.log.Errorf("Consumer %q acking failed message: %s", cfg.Name, err)
			}
			return
		}
		consumedMessages.WithLabelValues(cfg.Name, "nacked").Inc()
		if err := msg.Nak(); err != nil {
			l.log.Errorf("Consumer %q nacking message: %s", cfg.Name, err)
		}
		return
	}
	consumedMessages.WithLabelValues(cfg.Name, "acked").Inc()
	if err := msg.Ack(); err != nil {
		l.log.Errorf("Consumer %q acking message: %s", cfg.Name, err)
	}
}
