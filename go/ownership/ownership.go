// Package ownership hosts the ownership update service: the only writer of
// the hot ownership index and the only producer of update notifications.
//
// Clicks arrive on two paths that are processed concurrently with
// independent backpressure: the durable click log consumer (authoritative,
// drives correctness across restarts) and the in-process click broadcast
// (shaves the log round trip off locally originated clicks). Both converge
// on ApplyClick; last-writer-wins absorbs duplicates and reordering, so the
// fast path re-seeing a click later via the log is harmless.
package ownership

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"

	"go.clickplanet.org/backend/go/broadcast"
	"go.clickplanet.org/backend/go/clicklog"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickstore"
)

// ConsumerName is the durable name of the updater's click log consumer.
const ConsumerName = "tile-ownership-update"

var (
	appliedClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ownership_applied_clicks_total",
		Help: "Clicks applied to the hot index, by effect.",
	}, []string{"effect"})
)

// HotIndex is the slice of the hot store the updater mutates.
type HotIndex interface {
	clickstore.ClickStore
	clickstore.Reindexer
}

// Consumer abstracts the durable leg of the click log.
type Consumer interface {
	Consume(ctx context.Context, cfg clicklog.ConsumerConfig, handler clicklog.Handler) error
}

// Updater applies clicks to the hot index and announces ownership changes.
type Updater struct {
	hot           HotIndex
	consumer      Consumer
	consumerCfg   clicklog.ConsumerConfig
	clickFeed     *broadcast.Broadcaster[*clicks.Click]
	notifications *broadcast.Broadcaster[*clicks.UpdateNotification]
	fastWorkers   int
	log           *zap.SugaredLogger
}

// New returns an Updater. consumerCfg.Name should be ConsumerName so the
// cursor is shared across restarts; fastWorkers bounds the fast path's
// concurrency the way consumerCfg.Workers bounds the durable path's.
func New(
	hot HotIndex,
	consumer Consumer,
	consumerCfg clicklog.ConsumerConfig,
	clickFeed *broadcast.Broadcaster[*clicks.Click],
	notifications *broadcast.Broadcaster[*clicks.UpdateNotification],
	fastWorkers int,
	log *zap.SugaredLogger,
) *Updater {
	if fastWorkers <= 0 {
		fastWorkers = consumerCfg.Workers
	}
	return &Updater{
		hot:           hot,
		consumer:      consumer,
		consumerCfg:   consumerCfg,
		clickFeed:     clickFeed,
		notifications: notifications,
		fastWorkers:   fastWorkers,
		log:           log,
	}
}

// Run processes both input paths until ctx is cancelled.
func (u *Updater) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return u.consumer.Consume(ctx, u.consumerCfg, u.handleLogMessage)
	})
	eg.Go(func() error {
		return u.runFastPath(ctx)
	})
	return eg.Wait()
}

// runFastPath drains the in-process click broadcast. If the subscription is
// evicted for lagging it resubscribes: the durable path will redeliver
// whatever was missed, so a gap here only costs latency.
func (u *Updater) runFastPath(ctx context.Context) error {
	for {
		sub := u.clickFeed.Subscribe()
		eg, _ := errgroup.WithContext(ctx)
		for i := 0; i < u.fastWorkers; i++ {
			eg.Go(func() error {
				for {
					select {
					case <-ctx.Done():
						return nil
					case click, ok := <-sub.C():
						if !ok {
							return nil
						}
						if err := u.ApplyClick(ctx, click); err != nil {
							u.log.Errorf("Applying broadcast click for tile %d: %s", click.TileId, err)
						}
					}
				}
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(sub.Err(), broadcast.ErrSlowSubscriber) {
			u.log.Warnf("Fast path lagged behind the click broadcast, resubscribing")
			continue
		}
		// Broadcaster closed; the fast path is done.
		return nil
	}
}

// handleLogMessage is the durable path handler. A payload that cannot be
// decoded is logged and dropped (returning nil acks it) so a poison message
// never blocks the stream.
func (u *Updater) handleLogMessage(ctx context.Context, subject string, payload []byte) error {
	click := &clicks.Click{}
	if err := proto.Unmarshal(payload, click); err != nil {
		u.log.Errorf("Dropping undecodable click on %s: %s", subject, err)
		return nil
	}
	if click.TileId < 1 {
		u.log.Errorf("Dropping click with tile id %d on %s", click.TileId, subject)
		return nil
	}
	return u.ApplyClick(ctx, click)
}

// ApplyClick is the single convergence point for both paths: save with
// last-writer-wins, and when the tile's country actually changed, maintain
// the reverse index and emit exactly one notification. Stale and
// same-country clicks end here; SaveClick already suppressed them.
func (u *Updater) ApplyClick(ctx context.Context, click *clicks.Click) error {
	tileID := uint32(click.TileId)
	previous, err := u.hot.SaveClick(ctx, tileID, click)
	if err != nil {
		return errors.Wrapf(err, "saving click for tile %d", tileID)
	}

	previousCountry := ""
	if previous != nil {
		previousCountry = previous.CountryId
	}
	if previous != nil && previousCountry == click.CountryId {
		appliedClicks.WithLabelValues("unchanged").Inc()
		return nil
	}
	if previous != nil && previous.TimestampNs >= click.TimestampNs {
		// SaveClick kept the stored value; nothing changed.
		appliedClicks.WithLabelValues("stale").Inc()
		return nil
	}

	u.hot.Reindex(ctx, tileID, click.CountryId, previousCountry)
	u.notifications.Send(&clicks.UpdateNotification{
		TileId:            click.TileId,
		CountryId:         click.CountryId,
		PreviousCountryId: previousCountry,
	})
	appliedClicks.WithLabelValues("changed").Inc()
	return nil
}
