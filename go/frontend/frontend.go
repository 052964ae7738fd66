// Package frontend is the HTTP and WebSocket surface of the click pipeline.
// REST bodies carry protobuf bytes inside a small JSON envelope; the
// WebSocket feed streams binary UpdateNotification frames.
package frontend

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"go.clickplanet.org/backend/go/broadcast"
	"go.clickplanet.org/backend/go/clicks"
	"go.clickplanet.org/backend/go/clickservice"
	"go.clickplanet.org/backend/go/clickstore"
)

const (
	// requestTimeout bounds every REST handler.
	requestTimeout = 10 * time.Second

	// maxBodySize caps REST request bodies.
	maxBodySize = 1 << 20

	// WebSocket keepalive. pingPeriod must be shorter than pongWait.
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second

	protobufContentType = "application/protobuf"
)

// errBadRequest marks client mistakes the click service does not already
// classify, such as an undecodable body.
var errBadRequest = errors.New("bad request")

var (
	servedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frontend_requests_total",
		Help: "REST requests served, by route and status code.",
	}, []string{"route", "code"})
	wsConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "frontend_ws_connections",
		Help: "Currently connected WebSocket listeners.",
	})
)

// ClickProcessor is the slice of the click service the frontend needs.
type ClickProcessor interface {
	ProcessClick(ctx context.Context, req *clicks.ClickRequest) (*clicks.ClickResponse, error)
}

// OwnershipReader is the read side of the hot ownership index.
type OwnershipReader interface {
	clickstore.ClickStore
	clickstore.LeaderboardStore
}

// Server serves the public API.
type Server struct {
	processor     ClickProcessor
	ownerships    OwnershipReader
	notifications *broadcast.Broadcaster[*clicks.UpdateNotification]
	upgrader      websocket.Upgrader
	log           *zap.SugaredLogger
}

// New returns a Server reading ownership from ownerships and streaming
// change notifications from notifications.
func New(
	processor ClickProcessor,
	ownerships OwnershipReader,
	notifications *broadcast.Broadcaster[*clicks.UpdateNotification],
	log *zap.SugaredLogger,
) *Server {
	return &Server{
		processor:     processor,
		ownerships:    ownerships,
		notifications: notifications,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// Handler returns the root handler: CORS for any origin, REST routes under a
// shared deadline, WebSocket routes outside it.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)
	r.Use(s.countRequests)

	r.Group(func(r chi.Router) {
		r.Use(withDeadline)
		r.Post("/api/click", s.click)
		r.Post("/v2/rpc/click", s.click)
		r.Post("/api/ownerships-by-batch", s.ownershipsByBatch)
		r.Post("/v2/rpc/ownerships-by-batch", s.ownershipsByBatch)
		r.Get("/v2/rpc/ownerships", s.allOwnerships)
		r.Get("/v2/rpc/leaderboard", s.leaderboard)
		r.Get("/healthz", s.healthz)
	})

	r.Get("/ws/listen", s.listen)
	r.Get("/v2/ws/listen", s.listen)
	return r
}

// withDeadline bounds a REST handler. An exceeded deadline surfaces through
// the handler's own error path as a 500, not as a transport-level timeout.
func withDeadline(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		servedRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

// envelope is the JSON wrapper around raw protobuf bytes; encoding/json
// base64s the Data field on both directions.
type envelope struct {
	Data []byte `json:"data"`
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request, msg proto.Message) error {
	var env envelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&env); err != nil {
		return errors.Wrap(errBadRequest, err.Error())
	}
	if err := proto.Unmarshal(env.Data, msg); err != nil {
		return errors.Wrap(errBadRequest, err.Error())
	}
	return nil
}

func (s *Server) writeEnvelope(w http.ResponseWriter, r *http.Request, msg proto.Message) {
	data, err := proto.Marshal(msg)
	if err != nil {
		s.httpError(w, r, errors.Wrap(err, "encoding response"))
		return
	}
	s.writeJSON(w, r, envelope{Data: data})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Errorf("Writing response for %s: %s", r.URL.Path, err)
	}
}

// httpError maps an error to a status code without leaking internals. Client
// mistakes get a 400, everything else a bare 500.
func (s *Server) httpError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadRequest) || errors.Is(err, clickservice.ErrInvalidRequest) {
		s.log.Infof("Bad request on %s: %s", r.URL.Path, err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.log.Errorf("Serving %s: %s", r.URL.Path, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (s *Server) click(w http.ResponseWriter, r *http.Request) {
	req := &clicks.ClickRequest{}
	if err := s.readBody(w, r, req); err != nil {
		s.httpError(w, r, err)
		return
	}
	if _, err := s.processor.ProcessClick(r.Context(), req); err != nil {
		s.httpError(w, r, err)
		return
	}
	// Acceptance is the only information the caller needs; ownership
	// changes arrive over the WebSocket feed.
	s.writeJSON(w, r, struct{}{})
}

func (s *Server) ownershipsByBatch(w http.ResponseWriter, r *http.Request) {
	req := &clicks.BatchRequest{}
	if err := s.readBody(w, r, req); err != nil {
		s.httpError(w, r, err)
		return
	}
	if req.StartTileId < 1 || req.EndTileId < req.StartTileId || req.EndTileId > clickstore.MaxTileID {
		s.httpError(w, r, errors.Wrapf(errBadRequest, "tile range [%d, %d] out of bounds", req.StartTileId, req.EndTileId))
		return
	}
	state, err := s.ownerships.GetRange(r.Context(), uint32(req.StartTileId), uint32(req.EndTileId))
	if err != nil {
		s.httpError(w, r, err)
		return
	}
	s.writeEnvelope(w, r, state)
}

func (s *Server) allOwnerships(w http.ResponseWriter, r *http.Request) {
	state, err := s.ownerships.GetAll(r.Context())
	if err != nil {
		s.httpError(w, r, err)
		return
	}
	s.writeEnvelope(w, r, state)
}

// leaderboardEntry mirrors clicks.LeaderboardEntry for the JSON rendering.
type leaderboardEntry struct {
	CountryID string `json:"country_id"`
	Score     uint32 `json:"score"`
}

func (s *Server) leaderboard(w http.ResponseWriter, r *http.Request) {
	scores, err := s.ownerships.Leaderboard(r.Context())
	if err != nil {
		s.httpError(w, r, err)
		return
	}
	entries := make([]leaderboardEntry, 0, len(scores))
	for country, score := range scores {
		entries = append(entries, leaderboardEntry{CountryID: country, Score: score})
	}
	// Deterministic order: score descending, ties by country id.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].CountryID < entries[j].CountryID
	})

	if strings.Contains(r.Header.Get("Accept"), protobufContentType) {
		resp := &clicks.LeaderboardResponse{}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, &clicks.LeaderboardEntry{
				CountryId: e.CountryID,
				Score:     e.Score,
			})
		}
		data, err := proto.Marshal(resp)
		if err != nil {
			s.httpError(w, r, errors.Wrap(err, "encoding leaderboard"))
			return
		}
		w.Header().Set("Content-Type", protobufContentType)
		if _, err := w.Write(data); err != nil {
			s.log.Errorf("Writing leaderboard: %s", err)
		}
		return
	}
	s.writeJSON(w, r, struct {
		Entries []leaderboardEntry `json:"entries"`
	}{Entries: entries})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// listen upgrades to a WebSocket and streams every ownership change as a
// binary protobuf frame. The connection ends when the client goes away, the
// subscription is evicted for lagging, or the notification broadcaster is
// closed at shutdown.
func (s *Server) listen(w http.ResponseWriter, r *http.Request) {
	// Subscribe before the handshake completes so a notification sent right
	// after the client's dial returns is never missed.
	sub := s.notifications.Subscribe()
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		sub.Unsubscribe()
		s.log.Infof("WebSocket upgrade from %s failed: %s", r.RemoteAddr, err)
		return
	}
	wsConnections.Inc()
	s.log.Debugf("WebSocket listener connected from %s", r.RemoteAddr)

	go s.wsWriter(conn, sub)
	go s.wsReader(conn, sub)
}

func (s *Server) wsWriter(conn *websocket.Conn, sub *broadcast.Subscription[*clicks.UpdateNotification]) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
		wsConnections.Dec()
	}()
	for {
		select {
		case notification, ok := <-sub.C():
			if !ok {
				reason := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
				if errors.Is(sub.Err(), broadcast.ErrSlowSubscriber) {
					reason = websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber too slow")
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, reason)
				return
			}
			data, err := proto.Marshal(notification)
			if err != nil {
				s.log.Errorf("Encoding notification for tile %d: %s", notification.TileId, err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// wsReader services control frames and detects the client going away; the
// feed itself is write-only.
func (s *Server) wsReader(conn *websocket.Conn, sub *broadcast.Subscription[*clicks.UpdateNotification]) {
	defer sub.Unsubscribe()
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	conn.SetReadLimit(maxBodySize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
