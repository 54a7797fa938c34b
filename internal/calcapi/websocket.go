package calcapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"
)

// Origins are checked by the CORS layer for plain requests; the socket accepts
// the same page from any origin.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Socket handles GET /calculator/sessions/{sessionID}/ws. Each text frame is
// an EventRequest; each reply is a DisplayResponse, or {"error": ...} for a
// frame that cannot be applied. Frames are handled strictly in order.
func (h *Handler) Socket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	logger := observability.LoggerWithTrace(r.Context()).With(zap.String("session_id", id))

	if err := h.store.Do(id, func(*calculator.Calculator) error { return nil }); err != nil {
		handlers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	logger.Info("websocket connected")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var req EventRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendSocketError(conn, logger, "invalid message format")
			continue
		}

		ev, err := req.event()
		if err != nil {
			h.sendSocketError(conn, logger, err.Error())
			continue
		}

		resp, err := h.apply(r.Context(), id, ev)
		if errors.Is(err, session.ErrNotFound) {
			h.sendSocketError(conn, logger, err.Error())
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session expired"))
			return
		}

		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (h *Handler) sendSocketError(conn *websocket.Conn, logger *zap.Logger, msg string) {
	if err := conn.WriteJSON(socketError{Error: msg}); err != nil {
		logger.Warn("websocket write failed", zap.Error(err))
	}
}
