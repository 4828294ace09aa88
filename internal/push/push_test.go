package push

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestURLFor(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"http://localhost:5000", "ws://localhost:5000/ws?user=7"},
		{"https://cal.example.com", "wss://cal.example.com/ws?user=7"},
		{"http://localhost:5000/", "ws://localhost:5000/ws?user=7"},
	}
	for _, tc := range cases {
		got, err := URLFor(tc.base, 7)
		if err != nil {
			t.Fatalf("URLFor(%q): %v", tc.base, err)
		}
		if got != tc.want {
			t.Fatalf("URLFor(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}

	if _, err := URLFor("ftp://nope", 7); err == nil {
		t.Fatalf("URLFor accepted an unsupported scheme")
	}
}

func TestListenDeliversReminderAndStopsOnCancel(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("user") != "7" {
			http.Error(w, "wrong room", http.StatusBadRequest)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type":"task","title":"File report","note":"before 5pm"}`))
		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	wsURL, err := URLFor(srv.URL, 7)
	if err != nil {
		t.Fatalf("URLFor: %v", err)
	}
	if !strings.HasPrefix(wsURL, "ws://") {
		t.Fatalf("unexpected push url %q", wsURL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Reminder, 1)
	stopped := make(chan struct{})
	go func() {
		NewListener(wsURL).Listen(ctx, out)
		close(stopped)
	}()

	select {
	case r := <-out:
		if r.Type != "task" || r.Title != "File report" || r.Note != "before 5pm" {
			t.Fatalf("reminder = %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reminder delivered")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatalf("listener did not stop on context cancel")
	}
}
