package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sobeslab/intervox/internal/interview"
)

const shutdownTimeout = 10 * time.Second

// Server upgrades HTTP connections to WebSocket and runs one interview
// handler loop per connection.
type Server struct {
	handler    *interview.Handler
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

func NewServer(addr string, handler *interview.Handler) *Server {
	s := &Server{
		handler: handler,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveWS)
	mux.HandleFunc("/health", serveHealth)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	return s
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "remote_addr", r.RemoteAddr)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	slog.Info("client connected", "remote_addr", r.RemoteAddr)
	s.handler.Serve(r.Context(), &wsConn{conn: conn})
	slog.Info("client disconnected", "remote_addr", r.RemoteAddr)
}

func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) ListenAndServe() error {
	slog.Info("websocket server listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// wsConn adapts a gorilla connection to the handler's Conn interface.
// Writes are serialized because gorilla allows only one concurrent writer.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c *wsConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}
