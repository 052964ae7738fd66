// Package clickstore defines the capability interfaces shared by the hot
// in-memory ownership index and the cold Redis-backed store. Callers depend
// on the smallest interface that covers what they do; a single implementation
// may satisfy several of them.
package clickstore

import (
	"context"

	"github.com/pkg/errors"

	"go.clickplanet.org/backend/go/clicks"
)

// MaxTileID is the highest tile id the coordinate generation emits. The
// pipeline treats tile ids as opaque beyond the [1, MaxTileID] range check
// done at the edge.
const MaxTileID = 250_000

// ErrInvalidData marks a stored record that cannot be decoded. It is
// returned (wrapped) by point reads of the damaged tile; bulk scans skip and
// log such records instead so one bad member never poisons a snapshot.
var ErrInvalidData = errors.New("invalid stored ownership record")

// ClickStore is the forward map: tile id to current ownership.
type ClickStore interface {
	// GetTile returns the current ownership of a tile, or (nil, nil) if the
	// tile is unowned.
	GetTile(ctx context.Context, tileID uint32) (*clicks.Ownership, error)

	// GetAll returns every owned tile exactly once.
	GetAll(ctx context.Context) (*clicks.OwnershipState, error)

	// GetRange returns all owned tiles with start <= id <= end.
	GetRange(ctx context.Context, start, end uint32) (*clicks.OwnershipState, error)

	// SaveClick applies a click with last-writer-wins semantics: the stored
	// value is replaced only if the click's timestamp is strictly greater
	// than the stored one. The previous ownership (nil if the tile was
	// unowned) is returned whether or not the click was applied.
	SaveClick(ctx context.Context, tileID uint32, click *clicks.Click) (*clicks.Ownership, error)
}

// Reindexer maintains the reverse country -> tiles index.
type Reindexer interface {
	// Reindex moves a tile into newCountry's set and, if oldCountry is
	// non-empty, out of oldCountry's set, purging the old set if it becomes
	// empty. The call is atomic with respect to other Reindex calls but not
	// with respect to SaveClick; the ownership updater is the only component
	// that observes both.
	Reindex(ctx context.Context, tileID uint32, newCountry, oldCountry string)
}

// LeaderboardStore serves tile counts per country.
type LeaderboardStore interface {
	// ScoreOf returns the number of tiles a country currently owns, 0 if it
	// owns none.
	ScoreOf(ctx context.Context, countryID string) (uint32, error)

	// Leaderboard returns a snapshot of every country with a non-zero score.
	Leaderboard(ctx context.Context) (map[string]uint32, error)
}
