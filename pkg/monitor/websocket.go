package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"digital.vasic.matchers/pkg/logging"
)

// WebSocketServer streams evaluation events to connected
// dashboard clients over websocket connections.
type WebSocketServer struct {
	mu        sync.Mutex
	collector *EventCollector
	clients   map[*websocket.Conn]struct{}
	upgrader  websocket.Upgrader
	addr      string
	server    *http.Server
	logger    logging.Logger
}

// NewWebSocketServer creates a websocket server broadcasting
// the collector's events. A nil logger disables logging.
func NewWebSocketServer(
	addr string,
	collector *EventCollector,
	logger logging.Logger,
) *WebSocketServer {
	if logger == nil {
		logger = logging.NullLogger{}
	}
	return &WebSocketServer{
		addr:      addr,
		collector: collector,
		clients:   make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// Handler returns the HTTP handler serving the /ws, /stats and
// /health endpoints. Exposed separately so tests can mount it
// on an httptest server.
func (s *WebSocketServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(
		w http.ResponseWriter, _ *http.Request,
	) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Start begins serving and broadcasting until ctx is done.
func (s *WebSocketServer) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	s.collector.OnEvent(s.Broadcast)

	go func() {
		<-ctx.Done()
		s.server.Shutdown(context.Background())
	}()

	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Broadcast sends one event to every connected client.
// Clients whose connection errors are dropped.
func (s *WebSocketServer) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal event",
			logging.ErrorField(err),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		err := conn.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *WebSocketServer) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *WebSocketServer) handleWS(
	w http.ResponseWriter,
	r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed",
			logging.ErrorField(err),
		)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	s.logger.Debug("websocket client connected",
		logging.StringField("remote", r.RemoteAddr),
	)

	// Drain incoming frames so pings are handled; the stream
	// is one-directional.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				conn.Close()
				delete(s.clients, conn)
				s.mu.Unlock()
				return
			}
		}
	}()
}

func (s *WebSocketServer) handleStats(
	w http.ResponseWriter,
	_ *http.Request,
) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.collector.Stats())
}
