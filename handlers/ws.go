package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes storage-change signals to connected clients so they
// reload their in-memory copy of a collection. It is the production
// implementation of storage.Notifier.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	// Signals are tiny; clamp the message size accordingly.
	m.Config.MaxMessageSize = 4 * 1024

	// Keep-Alive Configuration (Critical for cloud hosting)
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("✅ Client subscribed to storage updates from %s", s.Request.RemoteAddr)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("🔌 Client unsubscribed from storage updates")
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request to a websocket session.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// StorageChanged broadcasts which storage key was rewritten. Implements
// storage.Notifier.
func (h *WSHandler) StorageChanged(key string) {
	h.broadcast(map[string]string{"type": "storage-updated", "key": key})
}

// BroadcastDigest announces how many occasions fall on the current day.
func (h *WSHandler) BroadcastDigest(count int) {
	h.broadcast(map[string]any{"type": "occasions-today", "count": count})
}

func (h *WSHandler) broadcast(payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("⚠️ Failed to encode broadcast payload: %v", err)
		return
	}
	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting storage update: %v", err)
	}
}
