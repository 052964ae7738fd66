// Package memclickstore is the hot ownership index: an in-memory forward map
// (tile -> ownership) with last-writer-wins updates and a reverse index
// (country -> owned tiles) that backs the leaderboard. It serves all read
// traffic; the ownership updater is its only writer.
package memclickstore

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickstore"
)

// tileData is immutable once stored; SaveClick swaps whole records so readers
// never observe a half-written entry.
type tileData struct {
	countryID   string
	timestampNs uint64
}

func (d *tileData) ownership(tileID uint32) *clicks.Ownership {
	return &clicks.Ownership{
		TileId:      tileID,
		CountryId:   d.countryID,
		TimestampNs: d.timestampNs,
	}
}

// Store implements clickstore.ClickStore, clickstore.Reindexer and
// clickstore.LeaderboardStore.
type Store struct {
	// tiles maps uint32 -> *tileData. Lock-free reads; writes linearize per
	// key through a CompareAndSwap loop.
	tiles sync.Map

	// mutex guards countryTiles. Reindex is the only writer and the
	// leaderboard handlers are the only other readers, so a single lock is
	// not a bottleneck here.
	mutex        sync.RWMutex
	countryTiles map[string]map[uint32]struct{}

	log *zap.SugaredLogger
}

// New returns an empty hot index.
func New(log *zap.SugaredLogger) *Store {
	return &Store{
		countryTiles: map[string]map[uint32]struct{}{},
		log:          log,
	}
}

// NewPopulated warm-loads a hot index from a cold store snapshot in a single
// streaming pass. Each stored ownership is replayed as a synthetic click with
// an empty click id. Any error aborts the load; the caller is expected to
// treat that as fatal.
func NewPopulated(ctx context.Context, src clickstore.ClickStore, log *zap.SugaredLogger) (*Store, error) {
	s := New(log)

	state, err := src.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reading cold store snapshot")
	}
	for _, o := range state.Ownerships {
		if _, err := s.SaveClick(ctx, o.TileId, &clicks.Click{
			TileId:      int32(o.TileId),
			CountryId:   o.CountryId,
			TimestampNs: o.TimestampNs,
			ClickId:     "",
		}); err != nil {
			return nil, errors.Wrapf(err, "replaying tile %d", o.TileId)
		}
		s.Reindex(ctx, o.TileId, o.CountryId, "")
	}
	log.Infof("Warm-loaded %d tiles into the hot index", len(state.Ownerships))
	return s, nil
}

// GetTile implements clickstore.ClickStore.
func (s *Store) GetTile(_ context.Context, tileID uint32) (*clicks.Ownership, error) {
	v, ok := s.tiles.Load(tileID)
	if !ok {
		return nil, nil
	}
	return v.(*tileData).ownership(tileID), nil
}

// GetAll implements clickstore.ClickStore.
func (s *Store) GetAll(_ context.Context) (*clicks.OwnershipState, error) {
	ret := &clicks.OwnershipState{}
	s.tiles.Range(func(k, v interface{}) bool {
		ret.Ownerships = append(ret.Ownerships, v.(*tileData).ownership(k.(uint32)))
		return true
	})
	return ret, nil
}

// GetRange implements clickstore.ClickStore. Bounds are inclusive.
func (s *Store) GetRange(_ context.Context, start, end uint32) (*clicks.OwnershipState, error) {
	ret := &clicks.OwnershipState{}
	s.tiles.Range(func(k, v interface{}) bool {
		id := k.(uint32)
		if id >= start && id <= end {
			ret.Ownerships = append(ret.Ownerships, v.(*tileData).ownership(id))
		}
		return true
	})
	return ret, nil
}

// SaveClick implements clickstore.ClickStore. Concurrent calls for the same
// tile linearize so that the highest timestamp is the final stored value; a
// click whose timestamp is <= the stored one leaves the entry untouched.
// Ties keep the stored value, biasing toward the first writer.
func (s *Store) SaveClick(_ context.Context, tileID uint32, click *clicks.Click) (*clicks.Ownership, error) {
	next := &tileData{countryID: click.CountryId, timestampNs: click.TimestampNs}
	for {
		cur, ok := s.tiles.Load(tileID)
		if !ok {
			if _, raced := s.tiles.LoadOrStore(tileID, next); raced {
				continue
			}
			return nil, nil
		}
		prev := cur.(*tileData)
		if click.TimestampNs <= prev.timestampNs {
			return prev.ownership(tileID), nil
		}
		if s.tiles.CompareAndSwap(tileID, cur, next) {
			return prev.ownership(tileID), nil
		}
	}
}

// Reindex implements clickstore.Reindexer.
func (s *Store) Reindex(_ context.Context, tileID uint32, newCountry, oldCountry string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if oldCountry != "" {
		if tiles, ok := s.countryTiles[oldCountry]; ok {
			delete(tiles, tileID)
			if len(tiles) == 0 {
				delete(s.countryTiles, oldCountry)
			}
		}
	}
	tiles, ok := s.countryTiles[newCountry]
	if !ok {
		tiles = map[uint32]struct{}{}
		s.countryTiles[newCountry] = tiles
	}
	tiles[tileID] = struct{}{}
}

// ScoreOf implements clickstore.LeaderboardStore.
func (s *Store) ScoreOf(_ context.Context, countryID string) (uint32, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return uint32(len(s.countryTiles[countryID])), nil
}

// Leaderboard implements clickstore.LeaderboardStore.
func (s *Store) Leaderboard(_ context.Context) (map[string]uint32, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ret := make(map[string]uint32, len(s.countryTiles))
	for country, tiles := range s.countryTiles {
		if len(tiles) > 0 {
			ret[country] = uint32(len(tiles))
		}
	}
	return ret, nil
}

// Assert the full capability set.
var _ clickstore.ClickStore = (*Store)(nil)
var _ clickstore.Reindexer = (*Store)(nil)
var _ clickstore.LeaderboardStore = (*Store)(nil)
