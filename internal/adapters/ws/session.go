// Package ws streams difficulty scoring to the level editor: each level
// payload the editor sends over the socket is answered with a fresh
// metrics record and solvability report.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/usecase"
)

type scoreMessage struct {
	Type           string         `json:"type"`
	Pattern        domain.Pattern `json:"pattern"`
	Supply         domain.Supply  `json:"supply"`
	BufferCapacity int            `json:"bufferCapacity"`
}

type metricsMessage struct {
	Type    string                    `json:"type"`
	Metrics *domain.DifficultyMetrics `json:"metrics,omitempty"`
	Tier    string                    `json:"tier,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// Handler coordinates live-scoring websocket sessions.
type Handler struct {
	uc       *usecase.Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		uc:     uc,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ws/score", h.handleScore)
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "session", sessionID, "err", err)
		return
	}
	h.logger.Info("editor connected", "session", sessionID)
	h.serve(r, sessionID, conn)
}

func (h *Handler) serve(r *http.Request, sessionID string, conn *websocket.Conn) {
	defer conn.Close()

	writeJSON := func(payload any) bool {
		data, err := json.Marshal(payload)
		if err != nil {
			h.logger.Error("marshal response", "session", sessionID, "err", err)
			return true
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return false
		}
		return true
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			h.logger.Info("editor disconnected", "session", sessionID)
			return
		}

		var msg scoreMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Warn("discarding malformed message", "session", sessionID, "err", err)
			continue
		}

		switch msg.Type {
		case "score":
			lvl := &domain.Level{
				Pattern:        msg.Pattern,
				Supply:         msg.Supply,
				BufferCapacity: msg.BufferCapacity,
			}
			m, err := h.uc.Score(r.Context(), lvl)
			if err != nil {
				if !writeJSON(metricsMessage{Type: "error", Error: err.Error()}) {
					return
				}
				continue
			}
			if !writeJSON(metricsMessage{Type: "metrics", Metrics: m, Tier: m.Tier.String()}) {
				return
			}
		default:
			if !writeJSON(metricsMessage{Type: "error", Error: "unknown message type: " + msg.Type}) {
				return
			}
		}
	}
}
