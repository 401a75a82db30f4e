package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/geosick/pitchdeck/pkg/logger"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The page is served from this same origin; nothing else talks to us.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamView upgrades to a websocket and pushes a freshly rendered view on
// every state change. This is the "animation layer": the state change is
// already done by the time a frame goes out.
// GET /api/sessions/{id}/ws
func (h *Handler) StreamView(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "Upgrading websocket", logger.Err(err))
		return
	}
	defer conn.Close()

	signals, cancel := controller.Subscribe()
	defer cancel()

	// Drain reads so we notice the peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(h.renderView(controller)); err != nil {
			slog.DebugContext(r.Context(), "Websocket write failed", logger.Err(err))
			return false
		}
		return true
	}

	if !send() {
		return
	}

	for {
		select {
		case <-signals:
			if !send() {
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}
