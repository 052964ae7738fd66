// Package clickservice is the ingestion path: it stamps incoming click
// requests with a server timestamp and a fresh click id, appends them
// durably to the click log, and mirrors them onto the in-process click
// broadcast for low-latency local consumption. It never reads ownership and
// never rejects a click for being a no-op.
package clickservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"go.clickplanet.org/backend/go/broadcast"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickstore"
	"go.clickplanet.org/backend/go/now"
)

// ErrInvalidRequest marks a click request that fails edge validation (tile
// id out of [1, MaxTileID], empty country). The request surface maps it to a
// 400.
var ErrInvalidRequest = errors.New("invalid click request")

var ingestedClicks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "clickservice_ingested_clicks_total",
	Help: "Clicks accepted and durably published to the click log.",
})

// Publisher is the slice of the click log the service needs.
type Publisher interface {
	Publish(ctx context.Context, tileID uint32, payload []byte) error
}

// Service ingests clicks.
type Service struct {
	publisher Publisher
	clickFeed *broadcast.Broadcaster[*clicks.Click]
	log       *zap.SugaredLogger
}

// New returns a Service. clickFeed may be shared with the ownership updater's
// fast path.
func New(publisher Publisher, clickFeed *broadcast.Broadcaster[*clicks.Click], log *zap.SugaredLogger) *Service {
	return &Service{
		publisher: publisher,
		clickFeed: clickFeed,
		log:       log,
	}
}

// ProcessClick validates a request, mints its metadata, durably publishes
// the click and emits it on the local broadcast. Publish errors propagate to
// the caller, which is expected to retry; the broadcast send is best effort.
func (s *Service) ProcessClick(ctx context.Context, req *clicks.ClickRequest) (*clicks.ClickResponse, error) {
	if req.TileId < 1 || req.TileId > clickstore.MaxTileID {
		return nil, errors.Wrapf(ErrInvalidRequest, "tile id %d out of range", req.TileId)
	}
	if req.CountryId == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "empty country id")
	}

	click := &clicks.Click{
		TileId:      req.TileId,
		CountryId:   req.CountryId,
		TimestampNs: uint64(now.Now(ctx).UnixNano()),
		ClickId:     uuid.NewString(),
	}
	payload, err := proto.Marshal(click)
	if err != nil {
		return nil, errors.Wrap(err, "encoding click")
	}
	if err := s.publisher.Publish(ctx, uint32(click.TileId), payload); err != nil {
		return nil, err
	}
	s.clickFeed.Send(click)
	ingestedClicks.Inc()

	return &clicks.ClickResponse{
		TimestampNs: click.TimestampNs,
		ClickId:     click.ClickId,
	}, nil
}
