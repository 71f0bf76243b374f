package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Stream message types.
const (
	MessageSnapshot = "snapshot"
	MessageError    = "error"
)

// StreamMessage is one websocket frame sent to the client.
type StreamMessage struct {
	Type  string             `json:"type"`
	View  *dto.ViewResponse  `json:"view,omitempty"`
	Error *dto.ErrorResponse `json:"error,omitempty"`
}

// StreamHandler pushes a view snapshot over a websocket every time the view
// changes. Frames received from the client are reducer actions, in the
// same shape as POST /api/v1/views/{id}/actions.
type StreamHandler struct {
	views    ports.ViewService
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a StreamHandler. A nil checkOrigin keeps the
// websocket default of same-origin only.
func NewStreamHandler(views ports.ViewService, checkOrigin func(*http.Request) bool) *StreamHandler {
	return &StreamHandler{
		views: views,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

// StreamView handles GET /api/v1/views/{id}/stream.
func (h *StreamHandler) StreamView(w http.ResponseWriter, r *http.Request) {
	info, v, ok := lookupView(w, r, h.views)
	if !ok {
		return
	}

	logger := logging.FromContext(r.Context()).With(slog.String("view_id", info.ID))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer func() { _ = conn.Close() }()

	s := &viewStream{
		conn:   conn,
		req:    r,
		info:   info,
		view:   v,
		logger: logger,
		errs:   make(chan error, 8),
		done:   make(chan struct{}),
	}

	logger.InfoContext(r.Context(), "view stream opened")
	go s.readPump()
	s.writePump()
	logger.InfoContext(r.Context(), "view stream closed")
}

// viewStream is one websocket connection following one view. readPump owns
// reads, writePump owns writes.
type viewStream struct {
	conn   *websocket.Conn
	req    *http.Request
	info   ports.ViewInfo
	view   ports.ListView
	logger *slog.Logger

	// errs carries rejected actions from readPump to writePump.
	errs chan error
	// done is closed when readPump stops.
	done chan struct{}
}

func (s *viewStream) readPump() {
	defer close(s.done)

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("view stream read failed", slog.Any("error", err))
			}
			return
		}
		if err := s.dispatch(msg); err != nil {
			select {
			case s.errs <- err:
			default:
				s.logger.Warn("dropping stream error, client not reading", slog.Any("error", err))
			}
		}
	}
}

func (s *viewStream) dispatch(msg []byte) error {
	var req dto.ActionRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.view.Dispatch(req.ToAction())
}

func (s *viewStream) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	var sent uint64
	first := true
	for {
		meta, changed := s.view.Watch()
		if first || meta.Version != sent {
			resp := dto.NewViewResponse(s.info, meta, s.view.Rows())
			if err := s.write(StreamMessage{Type: MessageSnapshot, View: &resp}); err != nil {
				return
			}
			sent, first = meta.Version, false
		}
		if meta.Closed {
			s.close(websocket.CloseGoingAway, "view closed")
			return
		}

		select {
		case <-changed:
		case err := <-s.errs:
			resp := dto.NewErrorResponse(s.req, err)
			if err := s.write(StreamMessage{Type: MessageError, Error: &resp}); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *viewStream) write(msg StreamMessage) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := s.conn.WriteJSON(msg)
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		s.logger.Warn("view stream write failed", slog.Any("error", err))
	}
	return err
}

func (s *viewStream) close(code int, text string) {
	deadline := time.Now().Add(writeWait)
	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}
