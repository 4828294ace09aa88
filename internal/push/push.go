package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Reminder is the typed domain message carried on the push channel. The server
// emits one per due reminder for the subscribed user.
type Reminder struct {
	Type        string `json:"type"` // "event" or "task"
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Note        string `json:"note,omitempty"`
}

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Listener maintains a websocket subscription to the per-user reminder channel
// and forwards inbound messages as typed Reminder values.
type Listener struct {
	url    string
	dialer *websocket.Dialer
}

// URLFor converts the backend base URL into the per-user push endpoint.
func URLFor(baseURL string, userID int) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported server scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	q := u.Query()
	q.Set("user", fmt.Sprintf("%d", userID))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func NewListener(wsURL string) *Listener {
	return &Listener{
		url: wsURL,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Listen dials the push channel and forwards reminders to out until ctx is
// canceled. Dropped connections are redialed with capped exponential backoff.
// The subscription is torn down on every exit path; Listen only returns once
// the connection is closed.
func (l *Listener) Listen(ctx context.Context, out chan<- Reminder) {
	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
		if err != nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}
		backoff = initialBackoff

		l.readLoop(ctx, conn, out)
	}
}

// readLoop pumps one connection. A goroutine watches ctx and closes the
// connection to unblock the pending read.
func (l *Listener) readLoop(ctx context.Context, conn *websocket.Conn, out chan<- Reminder) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var r Reminder
		if err := json.Unmarshal(data, &r); err != nil {
			continue // not a reminder frame
		}
		if r.Title == "" {
			continue
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return
		}
	}
}
