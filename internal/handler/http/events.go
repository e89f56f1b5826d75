package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
)

const streamKeepalive = 30 * time.Second

type EventsHandler interface {
	StreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	jwtService jwt.Service
	hub        *sse.Hub
	keepalive  time.Duration
}

func NewEventsHandler(jwtService jwt.Service, hub *sse.Hub) EventsHandler {
	return &EventsHandlerImpl{
		jwtService: jwtService,
		hub:        hub,
		keepalive:  streamKeepalive,
	}
}

type streamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// StreamToken implements EventsHandler.
func (h *EventsHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	email, err := jwt.EmailFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(email)
	if err != nil {
		slog.Error("Generate stream token error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, streamTokenResponse{Token: token, ExpiresIn: expiresIn})
}

// Stream implements EventsHandler. EventSource cannot send headers, so the stream token travels in the query.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	email, err := h.jwtService.ValidateStreamToken(r.URL.Query().Get("token"))
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	slog.Info("Event stream opened", "email", email, "subscribers", h.hub.Subscribers())
	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Warn("Dropping unencodable event", "event", event.Name, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, ": ping %d\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
