// Package redisclickstore is the cold store adapter: the durable home of
// tile ownership that the hot index is warm-loaded from at startup.
//
// Layout: one sorted set under the key "tiles". A member is the string
// "<country_id>:<timestamp_ns>" and its score is the tile id, so range reads
// by tile id map directly onto ZRANGEBYSCORE. A tile is uniquely identified
// by its score; a conditional update replaces whatever member currently
// carries that score.
package redisclickstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickstore"
)

const tilesKey = "tiles"

// Store implements clickstore.ClickStore on a Redis sorted set. The go-redis
// connection pool is the concurrency limiter against the backing server.
type Store struct {
	client redis.UniversalClient
	log    *zap.SugaredLogger
}

// New dials redisURL (redis://host:port/db) and verifies the connection.
func New(ctx context.Context, redisURL string, log *zap.SugaredLogger) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing redis url %q", redisURL)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "pinging redis at %q", redisURL)
	}
	return &Store{client: client, log: log}, nil
}

// NewFromClient wraps an existing client. Used by tests.
func NewFromClient(client redis.UniversalClient, log *zap.SugaredLogger) *Store {
	return &Store{client: client, log: log}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// parseMember splits "<country>:<timestamp_ns>".
func parseMember(member string) (string, uint64, error) {
	i := strings.LastIndex(member, ":")
	if i < 0 {
		return "", 0, errors.Wrapf(clickstore.ErrInvalidData, "member %q", member)
	}
	ts, err := strconv.ParseUint(member[i+1:], 10, 64)
	if err != nil {
		return "", 0, errors.Wrapf(clickstore.ErrInvalidData, "member %q", member)
	}
	return member[:i], ts, nil
}

func formatMember(countryID string, timestampNs uint64) string {
	return fmt.Sprintf("%s:%d", countryID, timestampNs)
}

// GetTile implements clickstore.ClickStore.
func (s *Store) GetTile(ctx context.Context, tileID uint32) (*clicks.Ownership, error) {
	members, err := s.client.ZRangeByScore(ctx, tilesKey, &redis.ZRangeBy{
		Min:   strconv.FormatUint(uint64(tileID), 10),
		Max:   strconv.FormatUint(uint64(tileID), 10),
		Count: 1,
	}).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading tile %d", tileID)
	}
	if len(members) == 0 {
		return nil, nil
	}
	country, ts, err := parseMember(members[0])
	if err != nil {
		return nil, err
	}
	return &clicks.Ownership{TileId: tileID, CountryId: country, TimestampNs: ts}, nil
}

// GetAll implements clickstore.ClickStore. The full scan is a single
// streaming ZRANGEBYSCORE over the whole score range, not N point reads.
func (s *Store) GetAll(ctx context.Context) (*clicks.OwnershipState, error) {
	return s.rangeByScore(ctx, "-inf", "+inf")
}

// GetRange implements clickstore.ClickStore. Bounds are inclusive.
func (s *Store) GetRange(ctx context.Context, start, end uint32) (*clicks.OwnershipState, error) {
	return s.rangeByScore(ctx,
		strconv.FormatUint(uint64(start), 10),
		strconv.FormatUint(uint64(end), 10))
}

func (s *Store) rangeByScore(ctx context.Context, min, max string) (*clicks.OwnershipState, error) {
	zs, err := s.client.ZRangeByScoreWithScores(ctx, tilesKey, &redis.ZRangeBy{
		Min: min,
		Max: max,
	}).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "scanning tiles %s..%s", min, max)
	}
	ret := &clicks.OwnershipState{Ownerships: make([]*clicks.Ownership, 0, len(zs))}
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		country, ts, err := parseMember(member)
		if err != nil {
			// One damaged member must not poison the snapshot.
			s.log.Errorf("Skipping malformed tile record %q (score %v): %s", member, z.Score, err)
			continue
		}
		ret.Ownerships = append(ret.Ownerships, &clicks.Ownership{
			TileId:      uint32(z.Score),
			CountryId:   country,
			TimestampNs: ts,
		})
	}
	return ret, nil
}

// SaveClick implements clickstore.ClickStore with the last-writer-wins rule:
// if the stored timestamp is >= the click's, the stored record is left
// untouched and returned. Otherwise the member carrying this tile's score is
// replaced in one atomic pipeline.
func (s *Store) SaveClick(ctx context.Context, tileID uint32, click *clicks.Click) (*clicks.Ownership, error) {
	score := strconv.FormatUint(uint64(tileID), 10)
	current, err := s.client.ZRangeByScore(ctx, tilesKey, &redis.ZRangeBy{
		Min: score,
		Max: score,
	}).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading tile %d before save", tileID)
	}

	var previous *clicks.Ownership
	if len(current) > 0 {
		country, ts, err := parseMember(current[0])
		if err != nil {
			return nil, err
		}
		previous = &clicks.Ownership{TileId: tileID, CountryId: country, TimestampNs: ts}
		if click.TimestampNs <= ts {
			s.log.Debugf("Ignoring outdated click for tile %d (stored: %d, received: %d)", tileID, ts, click.TimestampNs)
			return previous, nil
		}
	}

	newMember := formatMember(click.CountryId, click.TimestampNs)
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, tilesKey, redis.Z{Score: float64(tileID), Member: newMember})
	for _, old := range current {
		if old != newMember {
			pipe.ZRem(ctx, tilesKey, old)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "writing tile %d", tileID)
	}
	return previous, nil
}

var _ clickstore.ClickStore = (*Store)(nil)
