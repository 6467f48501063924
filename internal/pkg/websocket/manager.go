package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Client is one live stream connection
type Client struct {
	ID     string
	UserID string
	Scope  string

	conn      *websocket.Conn
	mu        sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

// Send writes an event envelope to the client
func (c *Client) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// SendError writes an error envelope to the client
func (c *Client) SendError(code, message string) error {
	return c.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// Done is closed once the peer goes away or the client is closed
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close shuts the connection down. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.conn != nil {
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = c.conn.Close()
		}
	})
}

// readLoop answers pings and detects peer disconnects
func (c *Client) readLoop() {
	defer c.Close()
	c.conn.SetReadLimit(maxMessageSize)
	for {
		var msg models.WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("WebSocket read failed",
					logger.String("client_id", c.ID),
					logger.Err(err))
			}
			if _, ok := err.(*json.SyntaxError); ok {
				_ = c.SendError(constants.ErrorInvalidFormat, "invalid message format")
				continue
			}
			return
		}
		switch msg.Event {
		case constants.EventPing:
			_ = c.Send(constants.EventPong, map[string]string{})
		default:
			_ = c.SendError(constants.ErrorInvalidFormat, "unsupported event")
		}
	}
}

// Manager tracks live stream connections
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and runs serve until it returns.
// serve should block until the client is done.
func (m *Manager) HandleConnection(c echo.Context, userID, scope string, serve func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Scope:  scope,
		conn:   ws,
		done:   make(chan struct{}),
	}
	m.addClient(client)
	defer func() {
		m.removeClient(client.ID)
		client.Close()
	}()

	logger.Info("Stream client connected",
		logger.String("client_id", client.ID),
		logger.String("user_id", userID),
		logger.String("scope", scope))

	go client.readLoop()

	if err := serve(client); err != nil {
		logger.Warn("Stream ended with error",
			logger.String("client_id", client.ID),
			logger.String("scope", scope),
			logger.Err(err))
	}
	return nil
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ID] = client
}

func (m *Manager) removeClient(id string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, id)
}

// Count returns the number of live connections
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// CloseAll disconnects every client
func (m *Manager) CloseAll() {
	m.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	m.RUnlock()

	for _, c := range clients {
		_ = c.Send(constants.EventStreamClosed, map[string]string{"reason": "server shutdown"})
		c.Close()
	}
}
