package feed

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/fwlog/internal/discovery"
	"github.com/muurk/fwlog/internal/logging"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Buffered chunks per subscriber before it is considered stalled
	subscriberQueue = 256
)

// Config holds the feed server configuration
type Config struct {
	Host     string
	Port     int
	Instance string            // mDNS instance name (empty = no announcement)
	Metadata map[string]string // TXT record metadata for the announcement
}

// Server republishes capture text to WebSocket subscribers
type Server struct {
	config       *Config
	listener     net.Listener
	httpServer   *http.Server
	mu           sync.Mutex
	subscribers  map[*subscriber]struct{}
	mdnsShutdown func()
	closed       bool
}

// subscriber is a single WebSocket consumer with a buffered send queue
type subscriber struct {
	conn       *websocket.Conn
	remoteAddr string
	send       chan string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Feeds carry no browser-sensitive state
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewServer creates a feed server with the given configuration
func NewServer(config *Config) *Server {
	return &Server{
		config:      config,
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Start begins listening for subscribers and announces the feed over mDNS.
// It returns once the listener is established; serving happens in the
// background until Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", s.handleFeed)
	s.httpServer = &http.Server{Handler: mux}

	logging.Info("Feed server listening",
		zap.String("addr", listener.Addr().String()),
	)

	if s.config.Instance != "" {
		shutdown, err := discovery.Register(s.config.Instance, s.Port(), s.config.Metadata)
		if err != nil {
			// Discovery is best-effort: subscribers can still connect directly
			logging.Warn("Failed to announce feed over mDNS",
				zap.String("instance", s.config.Instance),
				zap.Error(err),
			)
		} else {
			s.mdnsShutdown = shutdown
			logging.Info("Feed announced over mDNS",
				zap.String("instance", s.config.Instance),
				zap.Int("port", s.Port()),
			)
		}
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("Feed server stopped", zap.Error(err))
		}
	}()

	return nil
}

// Port returns the port the server is listening on. Useful when the
// configured port was 0 and the OS picked one.
func (s *Server) Port() int {
	if s.listener == nil {
		return s.config.Port
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Publish sends a chunk of capture text to all connected subscribers.
// Stalled subscribers are disconnected rather than blocking the feed.
func (s *Server) Publish(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sub := range s.subscribers {
		select {
		case sub.send <- text:
		default:
			logging.Warn("Dropping stalled subscriber",
				zap.String("remote_addr", sub.remoteAddr),
			)
			delete(s.subscribers, sub)
			close(sub.send)
		}
	}
}

// SubscriberCount returns the number of connected subscribers
func (s *Server) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// Shutdown closes all subscriber connections and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for sub := range s.subscribers {
		delete(s.subscribers, sub)
		close(sub.send)
	}
	s.mu.Unlock()

	if s.mdnsShutdown != nil {
		s.mdnsShutdown()
	}

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleFeed upgrades an HTTP request to a WebSocket subscription
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	sub := &subscriber{
		conn:       conn,
		remoteAddr: conn.RemoteAddr().String(),
		send:       make(chan string, subscriberQueue),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()

	logging.LogConnection(sub.remoteAddr, "subscriber_connected")

	go s.writePump(sub)
	go s.readPump(sub)
}

// writePump forwards published chunks to the subscriber and keeps the
// connection alive with periodic pings
func (s *Server) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sub.conn.Close()
	}()

	for {
		select {
		case text, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Server dropped or shut down this subscriber
				_ = sub.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
				logging.Debug("Subscriber write failed",
					zap.String("remote_addr", sub.remoteAddr),
					zap.Error(err),
				)
				s.remove(sub)
				return
			}
			logging.LogFeedMessage(sub.remoteAddr, "sent", websocket.TextMessage, []byte(text))

		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.remove(sub)
				return
			}
		}
	}
}

// readPump drains the connection so control frames are processed.
// Subscribers send nothing of interest; any text is ignored.
func (s *Server) readPump(sub *subscriber) {
	defer func() {
		s.remove(sub)
		_ = sub.conn.Close()
		logging.LogConnection(sub.remoteAddr, "subscriber_disconnected")
	}()

	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// remove unregisters a subscriber if it is still registered
func (s *Server) remove(sub *subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[sub]; ok {
		delete(s.subscribers, sub)
		close(sub.send)
	}
}
