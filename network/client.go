package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}

var (
	ErrNotConnected = errors.New("not connected")
	ErrQueueFull    = errors.New("outbound queue full")
)

const writeTimeout = 5 * time.Second

// Client manages a WebSocket connection to the pond server.
// All shared fields are protected by mu; the read and write loops run on
// their own goroutines and only talk to the game through the two queues.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn
	cancel    context.CancelFunc

	inbound  chan messages.Envelope
	outbound chan messages.Envelope
}

func NewClient() *Client {
	return &Client{
		state:    StateDisconnected,
		inbound:  make(chan messages.Envelope, cfg.Network.InboundQueueSize),
		outbound: make(chan messages.Envelope, cfg.Network.OutboundQueueSize),
	}
}

// BuildURL adds the player name to the server address. A bare host:port gets
// the ws scheme.
func BuildURL(server, playerName string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "ws://" + server
	}
	u, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("parse server url %q: %w", server, err)
	}
	if playerName != "" {
		q := u.Query()
		q.Set("name", playerName)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Connect dials the server in a background goroutine.
func (c *Client) Connect(server, playerName string) {
	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.state = StateConnecting
	c.lastError = nil
	c.cancel = cancel
	c.mu.Unlock()

	go c.run(ctx, server, playerName)
}

func (c *Client) run(ctx context.Context, server, playerName string) {
	addr, err := BuildURL(server, playerName)
	if err != nil {
		c.setError(err)
		return
	}

	dialCtx, cancelDial := context.WithTimeout(ctx, time.Duration(cfg.Network.DialTimeoutSecs)*time.Second)
	conn, _, err := websocket.Dial(dialCtx, addr, nil)
	cancelDial()
	if err != nil {
		c.setError(fmt.Errorf("connection failed: %w", err))
		return
	}

	log.Printf("[client] connected to %s", addr)
	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	go c.writeLoop(ctx, conn)
	c.readLoop(ctx, conn)
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		// wsjson.Read closes the connection on a bad payload, so frames are
		// decoded here and a malformed one is skipped.
		_, data, err := conn.Read(ctx)
		if err != nil {
			c.handleReadError(ctx, err)
			return
		}
		var env messages.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Printf("[client] malformed frame: %v", err)
			continue
		}
		select {
		case c.inbound <- env:
		default:
			log.Printf("[client] inbound queue full, dropping %s", env.Type)
		}
	}
}

func (c *Client) handleReadError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}
	if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
		log.Printf("[client] server closed the connection")
		c.mu.Lock()
		c.state = StateDisconnected
		c.conn = nil
		c.mu.Unlock()
		return
	}
	log.Printf("[client] read error: %v", err)
	c.setError(fmt.Errorf("read: %w", err))
}

func (c *Client) writeLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-c.outbound:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, env)
			cancel()
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("[client] write %s: %v", env.Type, err)
				}
				return
			}
		}
	}
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.state = StateDisconnected
	c.conn = nil
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.CloseNow()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// DrainEnvelopes returns every envelope received since the last call.
// Non-blocking.
func (c *Client) DrainEnvelopes() []messages.Envelope {
	return drainChan(c.inbound)
}

// Send queues payload for the writer goroutine. It never blocks; a full
// queue drops the message.
func (c *Client) Send(kind messages.Kind, payload any) error {
	if c.State() != StateConnected {
		return ErrNotConnected
	}
	env, err := messages.NewEnvelope(kind, payload)
	if err != nil {
		return err
	}
	select {
	case c.outbound <- env:
		return nil
	default:
		return fmt.Errorf("%s: %w", kind, ErrQueueFull)
	}
}

func (c *Client) SendMove(mv messages.MoveRequest) {
	if err := c.Send(messages.KindMove, mv); err != nil {
		log.Printf("[client] send move: %v", err)
	}
}

func (c *Client) SendQuack() {
	if err := c.Send(messages.KindQuack, messages.QuackRequest{}); err != nil {
		log.Printf("[client] send quack: %v", err)
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
