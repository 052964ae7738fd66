package ownership

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/proto"

	"go.clickplanet.org/backend/go/broadcast"
	"go.clickplanet.org/backend/go/clicklog"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickstore/memclickstore"
)

// fakeConsumer replays prepared messages through the handler, recording what
// the handler returned for each.
type fakeConsumer struct {
	mtx      sync.Mutex
	messages []*clicks.Click
	raw      [][]byte
	results  []error
}

func (f *fakeConsumer) Consume(ctx context.Context, cfg clicklog.ConsumerConfig, handler clicklog.Handler) error {
	f.mtx.Lock()
	for _, click := range f.messages {
		payload, err := proto.Marshal(click)
		if err != nil {
			f.mtx.Unlock()
			return err
		}
		f.results = append(f.results, handler(ctx, clicklog.SubjectForTile(uint32(click.TileId)), payload))
	}
	for _, payload := range f.raw {
		f.results = append(f.results, handler(ctx, clicklog.SubjectForTile(1), payload))
	}
	f.mtx.Unlock()
	<-ctx.Done()
	return nil
}

func newForTest(t *testing.T) (*Updater, *memclickstore.Store, *fakeConsumer, *broadcast.Broadcaster[*clicks.Click], *broadcast.Broadcaster[*clicks.UpdateNotification]) {
	hot := memclickstore.New(zaptest.NewLogger(t).Sugar())
	consumer := &fakeConsumer{}
	clickFeed := broadcast.New[*clicks.Click]("clicks", 64)
	notifications := broadcast.New[*clicks.UpdateNotification]("notifications", 64)
	u := New(hot, consumer, clicklog.DefaultConsumerConfig(ConsumerName), clickFeed, notifications, 2, zaptest.NewLogger(t).Sugar())
	return u, hot, consumer, clickFeed, notifications
}

func click(tile int32, country string, ts uint64) *clicks.Click {
	return &clicks.Click{TileId: tile, CountryId: country, TimestampNs: ts, ClickId: "test"}
}

func TestApplyClick_FirstClaimNotifies(t *testing.T) {
	u, hot, _, _, notifications := newForTest(t)
	sub := notifications.Subscribe()

	require.NoError(t, u.ApplyClick(context.Background(), click(7, "fr", 100)))

	got := <-sub.C()
	require.Equal(t, int32(7), got.TileId)
	require.Equal(t, "fr", got.CountryId)
	require.Empty(t, got.PreviousCountryId)

	tile, err := hot.GetTile(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "fr", tile.CountryId)

	score, err := hot.ScoreOf(context.Background(), "fr")
	require.NoError(t, err)
	require.Equal(t, uint32(1), score)
}

func TestApplyClick_TakeoverCarriesPreviousCountry(t *testing.T) {
	u, hot, _, _, notifications := newForTest(t)
	require.NoError(t, u.ApplyClick(context.Background(), click(7, "fr", 100)))
	sub := notifications.Subscribe()

	require.NoError(t, u.ApplyClick(context.Background(), click(7, "de", 200)))

	got := <-sub.C()
	require.Equal(t, "de", got.CountryId)
	require.Equal(t, "fr", got.PreviousCountryId)

	score, err := hot.ScoreOf(context.Background(), "fr")
	require.NoError(t, err)
	require.Zero(t, score)
}

func TestApplyClick_StaleClickIsSilent(t *testing.T) {
	u, hot, _, _, notifications := newForTest(t)
	require.NoError(t, u.ApplyClick(context.Background(), click(7, "fr", 200)))
	sub := notifications.Subscribe()

	require.NoError(t, u.ApplyClick(context.Background(), click(7, "de", 100)))

	select {
	case got := <-sub.C():
		t.Fatalf("unexpected notification %+v", got)
	default:
	}
	tile, err := hot.GetTile(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "fr", tile.CountryId)
}

func TestApplyClick_SameCountryIsSilent(t *testing.T) {
	u, _, _, _, notifications := newForTest(t)
	require.NoError(t, u.ApplyClick(context.Background(), click(7, "fr", 100)))
	sub := notifications.Subscribe()

	require.NoError(t, u.ApplyClick(context.Background(), click(7, "fr", 200)))

	select {
	case got := <-sub.C():
		t.Fatalf("unexpected notification %+v", got)
	default:
	}
}

func TestApplyClick_ReplayIsIdempotent(t *testing.T) {
	u, hot, _, _, notifications := newForTest(t)
	sub := notifications.Subscribe()

	c := click(7, "fr", 100)
	require.NoError(t, u.ApplyClick(context.Background(), c))
	require.NoError(t, u.ApplyClick(context.Background(), c))

	<-sub.C()
	select {
	case got := <-sub.C():
		t.Fatalf("replay produced a second notification %+v", got)
	default:
	}
	score, err := hot.ScoreOf(context.Background(), "fr")
	require.NoError(t, err)
	require.Equal(t, uint32(1), score)
}

func TestRun_DurablePathAppliesLogMessages(t *testing.T) {
	u, hot, consumer, _, notifications := newForTest(t)
	consumer.messages = []*clicks.Click{
		click(1, "fr", 100),
		click(2, "de", 110),
		click(1, "de", 120),
	}
	sub := notifications.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()

	var seen []*clicks.UpdateNotification
	for i := 0; i < 3; i++ {
		select {
		case n := <-sub.C():
			seen = append(seen, n)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for notifications")
		}
	}
	cancel()
	require.NoError(t, <-done)
	require.Len(t, seen, 3)

	tile, err := hot.GetTile(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "de", tile.CountryId)
}

func TestRun_UndecodableLogMessageIsAcked(t *testing.T) {
	u, _, consumer, _, _ := newForTest(t)
	consumer.raw = [][]byte{{0xff, 0xff, 0xff}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()

	require.Eventually(t, func() bool {
		consumer.mtx.Lock()
		defer consumer.mtx.Unlock()
		return len(consumer.results) == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	// Returning nil from the handler acks the poison message.
	require.NoError(t, consumer.results[0])
}

func TestRun_FastPathAppliesBroadcastClicks(t *testing.T) {
	u, hot, _, clickFeed, notifications := newForTest(t)
	sub := notifications.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()

	// The fast path subscribes asynchronously; resend until it lands.
	// Replays of the same click are idempotent.
	require.Eventually(t, func() bool {
		clickFeed.Send(click(9, "it", 100))
		tile, err := hot.GetTile(context.Background(), 9)
		return err == nil && tile != nil
	}, 5*time.Second, 10*time.Millisecond)

	select {
	case n := <-sub.C():
		require.Equal(t, int32(9), n.TileId)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the fast path notification")
	}
	cancel()
	require.NoError(t, <-done)

	tile, err := hot.GetTile(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "it", tile.CountryId)
}
