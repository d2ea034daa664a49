package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"scrappix-admin/pkg/logger"
)

// WatchFunc opens a standing watch for one topic on behalf of an admin. It
// returns a channel of full snapshots and a stop function that tears the
// watch down.
type WatchFunc func(ctx context.Context, adminID string) (<-chan interface{}, func(), error)

// Client is one connected console session.
type Client struct {
	AdminID string
	Conn    *websocket.Conn
	Send    chan []byte

	mu            sync.Mutex
	subscriptions map[string]func()
}

func NewClient(adminID string, conn *websocket.Conn) *Client {
	return &Client{
		AdminID:       adminID,
		Conn:          conn,
		Send:          make(chan []byte, 16),
		subscriptions: make(map[string]func()),
	}
}

// Hub fans Firestore snapshot streams out to connected console sessions.
// Each client subscribes to named topics; every snapshot on a topic's watch
// is pushed as a full replacement payload.
type Hub struct {
	topics     map[string]WatchFunc
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		topics:     make(map[string]WatchFunc),
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// RegisterTopic wires a topic name to its watch factory. Topics are
// registered once at startup, before Start.
func (h *Hub) RegisterTopic(name string, watch WatchFunc) {
	h.topics[name] = watch
}

// Start runs the hub's main loop in a goroutine.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client] = struct{}{}
				h.mutex.Unlock()
				logger.Info("Stream client connected: %s", client.AdminID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.stopAll()
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Info("Stream client disconnected: %s", client.AdminID)

			case <-ctx.Done():
				h.mutex.Lock()
				for client := range h.clients {
					delete(h.clients, client)
					client.stopAll()
					close(client.Send)
				}
				h.mutex.Unlock()
				// Signal clients that the loop is gone so late
				// disconnects never block on Unregister.
				close(h.done)
				return
			}
		}
	}()
}

type clientMessage struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type streamEnvelope struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

type streamError struct {
	Topic string `json:"topic,omitempty"`
	Error string `json:"error"`
}

// Subscribe opens the topic's watch for the client. Subscribing to an
// already-subscribed topic is a no-op.
func (h *Hub) Subscribe(ctx context.Context, client *Client, topic string) error {
	watch, ok := h.topics[topic]
	if !ok {
		return fmt.Errorf("unknown topic: %s", topic)
	}

	client.mu.Lock()
	if _, exists := client.subscriptions[topic]; exists {
		client.mu.Unlock()
		return nil
	}
	client.mu.Unlock()

	snapshots, stop, err := watch(ctx, client.AdminID)
	if err != nil {
		return err
	}

	client.mu.Lock()
	client.subscriptions[topic] = stop
	client.mu.Unlock()

	go func() {
		for snapshot := range snapshots {
			payload, err := json.Marshal(streamEnvelope{Topic: topic, Data: snapshot})
			if err != nil {
				logger.Error("Stream payload marshal failed for %s: %v", topic, err)
				continue
			}
			client.trySend(payload)
		}
	}()
	return nil
}

// unregister hands the client back to the hub loop. When the hub has
// already shut down, the client tears its own watches down instead.
func (h *Hub) unregister(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
		c.stopAll()
	}
}

// Unsubscribe tears down the client's watch on the topic, if any.
func (h *Hub) Unsubscribe(client *Client, topic string) {
	client.mu.Lock()
	stop, ok := client.subscriptions[topic]
	if ok {
		delete(client.subscriptions, topic)
	}
	client.mu.Unlock()

	if ok {
		stop()
	}
}

func (c *Client) stopAll() {
	c.mu.Lock()
	stops := make([]func(), 0, len(c.subscriptions))
	for topic, stop := range c.subscriptions {
		stops = append(stops, stop)
		delete(c.subscriptions, topic)
	}
	c.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}

// trySend drops the payload if the client's buffer is full. A stalled
// console gets the next snapshot instead.
func (c *Client) trySend(payload []byte) {
	defer func() {
		// Send may already be closed by the hub on disconnect.
		_ = recover()
	}()
	select {
	case c.Send <- payload:
	default:
	}
}

// ReadPump consumes subscribe/unsubscribe messages until the connection
// drops, then unregisters the client.
func (c *Client) ReadPump(ctx context.Context, hub *Hub) {
	defer func() {
		hub.unregister(c)
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("Stream read error for %s: %v", c.AdminID, err)
			}
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("", "malformed message")
			continue
		}

		switch msg.Action {
		case "subscribe":
			if err := hub.Subscribe(ctx, c, msg.Topic); err != nil {
				c.sendError(msg.Topic, err.Error())
			}
		case "unsubscribe":
			hub.Unsubscribe(c, msg.Topic)
		default:
			c.sendError(msg.Topic, fmt.Sprintf("unknown action: %s", msg.Action))
		}
	}
}

func (c *Client) sendError(topic, message string) {
	payload, err := json.Marshal(streamError{Topic: topic, Error: message})
	if err != nil {
		return
	}
	c.trySend(payload)
}

// WritePump sends queued payloads to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Error("Stream write error for %s: %v", c.AdminID, err)
			return
		}
	}
}
