package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/proto"

	"go.clickplanet.org/backend/go/broadcast"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickservice"
	"go.clickplanet.org/backend/go/clickstore/memclickstore"
)

type fakeProcessor struct {
	requests []*clicks.ClickRequest
	err      error
}

func (f *fakeProcessor) ProcessClick(_ context.Context, req *clicks.ClickRequest) (*clicks.ClickResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return &clicks.ClickResponse{TimestampNs: 1, ClickId: "click-1"}, nil
}

func newServerForTest(t *testing.T) (*httptest.Server, *fakeProcessor, *memclickstore.Store, *broadcast.Broadcaster[*clicks.UpdateNotification]) {
	processor := &fakeProcessor{}
	store := memclickstore.New(zaptest.NewLogger(t).Sugar())
	notifications := broadcast.New[*clicks.UpdateNotification]("notifications", 64)
	srv := New(processor, store, notifications, zaptest.NewLogger(t).Sugar())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, processor, store, notifications
}

func postEnvelope(t *testing.T, url string, msg proto.Message) *http.Response {
	data, err := proto.Marshal(msg)
	require.NoError(t, err)
	body, err := json.Marshal(map[string][]byte{"data": data})
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response, msg proto.Message) {
	defer func() { require.NoError(t, resp.Body.Close()) }()
	var env struct {
		Data []byte `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NoError(t, proto.Unmarshal(env.Data, msg))
}

func seed(t *testing.T, store *memclickstore.Store, tileID uint32, country string, ts uint64) {
	ctx := context.Background()
	previous, err := store.SaveClick(ctx, tileID, &clicks.Click{
		TileId:      int32(tileID),
		CountryId:   country,
		TimestampNs: ts,
	})
	require.NoError(t, err)
	previousCountry := ""
	if previous != nil {
		previousCountry = previous.CountryId
	}
	store.Reindex(ctx, tileID, country, previousCountry)
}

func TestClick_AcceptsEnvelopedRequest(t *testing.T) {
	ts, processor, _, _ := newServerForTest(t)

	for _, route := range []string{"/api/click", "/v2/rpc/click"} {
		resp := postEnvelope(t, ts.URL+route, &clicks.ClickRequest{TileId: 42, CountryId: "fr"})
		require.Equal(t, http.StatusOK, resp.StatusCode, route)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.JSONEq(t, "{}", string(body))
	}
	require.Len(t, processor.requests, 2)
	require.Equal(t, int32(42), processor.requests[0].TileId)
}

func TestClick_BadBodyIs400(t *testing.T) {
	ts, processor, _, _ := newServerForTest(t)

	for _, body := range []string{"not json", `{"data": "!!!"}`} {
		resp, err := http.Post(ts.URL+"/v2/rpc/click", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
	require.Empty(t, processor.requests)
}

func TestClick_InvalidRequestIs400(t *testing.T) {
	ts, processor, _, _ := newServerForTest(t)
	processor.err = errors.Wrap(clickservice.ErrInvalidRequest, "tile id 0 out of range")

	resp := postEnvelope(t, ts.URL+"/v2/rpc/click", &clicks.ClickRequest{TileId: 0, CountryId: "fr"})
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClick_ProcessorFailureIs500WithoutDetail(t *testing.T) {
	ts, processor, _, _ := newServerForTest(t)
	processor.err = errors.New("jetstream unavailable at 10.0.0.7")

	resp := postEnvelope(t, ts.URL+"/v2/rpc/click", &clicks.ClickRequest{TileId: 1, CountryId: "fr"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NotContains(t, string(body), "jetstream")
}

func TestOwnershipsByBatch_ReturnsRange(t *testing.T) {
	ts, _, store, _ := newServerForTest(t)
	seed(t, store, 1, "fr", 100)
	seed(t, store, 2, "de", 100)
	seed(t, store, 9, "it", 100)

	resp := postEnvelope(t, ts.URL+"/api/ownerships-by-batch", &clicks.BatchRequest{StartTileId: 1, EndTileId: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := &clicks.OwnershipState{}
	decodeEnvelope(t, resp, state)

	countries := map[uint32]string{}
	for _, o := range state.Ownerships {
		countries[o.TileId] = o.CountryId
	}
	require.Equal(t, map[uint32]string{1: "fr", 2: "de"}, countries)
}

func TestOwnershipsByBatch_InvalidRangeIs400(t *testing.T) {
	ts, _, _, _ := newServerForTest(t)

	for _, req := range []*clicks.BatchRequest{
		{StartTileId: 0, EndTileId: 5},
		{StartTileId: 10, EndTileId: 5},
		{StartTileId: 1, EndTileId: 250_001},
	} {
		resp := postEnvelope(t, ts.URL+"/api/ownerships-by-batch", req)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "request %+v", req)
	}
}

func TestAllOwnerships(t *testing.T) {
	ts, _, store, _ := newServerForTest(t)
	seed(t, store, 7, "fr", 100)
	seed(t, store, 250_000, "de", 100)

	resp, err := http.Get(ts.URL + "/v2/rpc/ownerships")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := &clicks.OwnershipState{}
	decodeEnvelope(t, resp, state)
	require.Len(t, state.Ownerships, 2)
}

func TestLeaderboard_JSONSortedByScoreThenCountry(t *testing.T) {
	ts, _, store, _ := newServerForTest(t)
	seed(t, store, 1, "fr", 100)
	seed(t, store, 2, "fr", 100)
	seed(t, store, 3, "de", 100)
	seed(t, store, 4, "it", 100)

	resp, err := http.Get(ts.URL + "/v2/rpc/leaderboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Entries []struct {
			CountryID string `json:"country_id"`
			Score     uint32 `json:"score"`
		} `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NoError(t, resp.Body.Close())

	require.Len(t, body.Entries, 3)
	require.Equal(t, "fr", body.Entries[0].CountryID)
	require.Equal(t, uint32(2), body.Entries[0].Score)
	// Tie between de and it broken by country id.
	require.Equal(t, "de", body.Entries[1].CountryID)
	require.Equal(t, "it", body.Entries[2].CountryID)
}

func TestLeaderboard_ProtobufWhenAccepted(t *testing.T) {
	ts, _, store, _ := newServerForTest(t)
	seed(t, store, 1, "fr", 100)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v2/rpc/leaderboard", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/protobuf")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/protobuf", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	board := &clicks.LeaderboardResponse{}
	require.NoError(t, proto.Unmarshal(data, board))
	require.Len(t, board.Entries, 1)
	require.Equal(t, "fr", board.Entries[0].CountryId)
	require.Equal(t, uint32(1), board.Entries[0].Score)
}

func TestHealthz(t *testing.T) {
	ts, _, _, _ := newServerForTest(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORS_PreflightAllowsAnyOrigin(t *testing.T) {
	ts, _, _, _ := newServerForTest(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v2/rpc/click", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://clickplanet.lol")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func TestListen_StreamsNotifications(t *testing.T) {
	ts, _, _, notifications := newServerForTest(t)

	for _, path := range []string{"/ws/listen", "/v2/ws/listen"} {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, path), nil)
		require.NoError(t, err)

		// The subscription is registered before listen returns, so the
		// send cannot race the dial once the handshake completed.
		notifications.Send(&clicks.UpdateNotification{TileId: 3, CountryId: "fr", PreviousCountryId: "de"})

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.BinaryMessage, kind)
		got := &clicks.UpdateNotification{}
		require.NoError(t, proto.Unmarshal(data, got))
		require.Equal(t, int32(3), got.TileId)
		require.Equal(t, "fr", got.CountryId)
		require.Equal(t, "de", got.PreviousCountryId)
		require.NoError(t, conn.Close())
	}
}

func TestListen_BroadcasterCloseEndsConnection(t *testing.T) {
	ts, _, _, notifications := newServerForTest(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "/ws/listen"), nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	notifications.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	require.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "err %v", err)
}
