// Package remote serves the game over a websocket. Every frame is pushed to
// the connected client as JSON and the client sends back key codes.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/input"
	"gloomhold/pkg/game/renderer"
	"gloomhold/pkg/logger"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
	keyBuffer      = 16
)

// KeyMessage is what the client sends for each key press. Codes use the
// terminal names: "k", "arrow_up", "escape", "enter", "f8".
type KeyMessage struct {
	Key string `json:"key"`
}

// Server is a renderer backend for a single websocket client. A newer
// connection replaces the older one.
type Server struct {
	Addr string

	upgrader websocket.Upgrader
	httpSrv  *http.Server
	keys     chan string
	done     chan struct{}

	connLock  deadlock.Mutex
	conn      *websocket.Conn
	lastFrame []byte

	log *logrus.Entry
}

// New creates a server that will listen on addr once Init is called.
func New(addr string) *Server {
	return &Server{
		Addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024 * 16,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		keys: make(chan string, keyBuffer),
		done: make(chan struct{}),
		log:  logger.Component("remote"),
	}
}

// Handler returns the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Init starts listening in the background.
func (s *Server) Init() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr, err)
	}
	s.httpSrv = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	s.log.WithField("addr", ln.Addr().String()).Info("Waiting for a websocket client on /ws")

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("HTTP server stopped")
		}
	}()
	return nil
}

// Clear is a no-op; every frame replaces the client's view.
func (s *Server) Clear() {}

// RenderFrame sends f to the client and keeps it for the next one to connect.
func (s *Server) RenderFrame(f renderer.Frame) {
	payload, err := json.Marshal(f)
	if err != nil {
		s.log.WithError(err).Error("Encoding frame failed")
		return
	}

	s.connLock.Lock()
	defer s.connLock.Unlock()
	s.lastFrame = payload
	if s.conn != nil {
		s.writeLocked(s.conn, payload)
	}
}

// GetInput waits for the next key from the client. Close or cancelling ctx
// unblocks it with a quit intent.
func (s *Server) GetInput(ctx context.Context, ic input.Context) input.Intent {
	select {
	case code := <-s.keys:
		return input.Resolve(ic, input.RawInput{
			Device:    input.DeviceRemote,
			Code:      code,
			Timestamp: time.Now(),
		})
	case <-s.done:
		return input.Intent{Action: input.ActionQuit}
	case <-ctx.Done():
		return input.Intent{Action: input.ActionQuit}
	}
}

// Close stops the listener and drops the client.
func (s *Server) Close() {
	select {
	case <-s.done:
		return
	default:
		close(s.done)
	}
	if s.httpSrv != nil {
		if err := s.httpSrv.Close(); err != nil {
			s.log.WithError(err).Warn("Closing HTTP server failed")
		}
	}
	s.connLock.Lock()
	defer s.connLock.Unlock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	s.log.WithField("remote", r.RemoteAddr).Info("Client connected")

	s.connLock.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.conn = conn
	if s.lastFrame != nil {
		s.writeLocked(conn, s.lastFrame)
	}
	s.connLock.Unlock()

	s.readPump(conn)
}

// readPump forwards key messages until the connection drops.
func (s *Server) readPump(conn *websocket.Conn) {
	defer func() {
		s.connLock.Lock()
		if s.conn == conn {
			s.conn = nil
		}
		s.connLock.Unlock()
		conn.Close()
		s.log.Info("Client disconnected")
	}()

	conn.SetReadLimit(maxMessageSize)
	for {
		var msg KeyMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("Websocket read failed")
			}
			return
		}
		if msg.Key == "" {
			continue
		}
		select {
		case s.keys <- msg.Key:
		case <-s.done:
			return
		default:
			s.log.WithField("key", msg.Key).Debug("Key buffer full, dropping key")
		}
	}
}

// writeLocked sends payload on conn. The caller holds connLock.
func (s *Server) writeLocked(conn *websocket.Conn, payload []byte) {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		s.log.WithError(err).Warn("Failed to set write deadline")
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		s.log.WithError(err).Debug("Writing frame failed")
		conn.Close()
		if s.conn == conn {
			s.conn = nil
		}
	}
}
