package controller

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// upgrader converts HTTP requests to WebSocket connections.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleLiveFeed streams the current reading and every subsequent update to
// the client as JSON messages.
func (c *readingControllerImpl) handleLiveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	updates := c.store.Subscribe()
	defer c.store.Unsubscribe(updates)

	slog.Info("websocket connection established", "remote", conn.RemoteAddr().String())

	// Current reading first so the client can render immediately.
	if err := conn.WriteJSON(c.store.Get()); err != nil {
		slog.Debug("websocket initial write failed", "remote", conn.RemoteAddr().String(), "error", err)
		return
	}

	// Reader goroutine notices client disconnects; inbound messages are ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case reading, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(reading); err != nil {
				slog.Debug("websocket write failed", "remote", conn.RemoteAddr().String(), "error", err)
				return
			}
		case <-done:
			slog.Debug("websocket connection closed", "remote", conn.RemoteAddr().String())
			return
		}
	}
}
