package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteer-match-api/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed pushes newly posted opportunities to connected browsers
type Feed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewFeed returns an empty feed hub
func NewFeed() *Feed {
	return &Feed{conns: make(map[*websocket.Conn]bool)}
}

// OpportunityFeedHandler upgrades the connection and keeps it registered
// until the client goes away
func (f *Feed) OpportunityFeedHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorf("failed to upgrade websocket: %v", err)
		return
	}

	f.mu.Lock()
	f.conns[conn] = true
	f.mu.Unlock()

	zap.S().Debugf("opportunity feed client connected: %v", conn.RemoteAddr())

	// drain reads so ping/pong and close frames get processed
	go func() {
		defer f.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// BroadcastOpportunity sends the opportunity to every connected client.
// Dead connections are dropped.
func (f *Feed) BroadcastOpportunity(opportunity models.Opportunity) {
	payload := map[string]interface{}{
		"event":       "opportunity.created",
		"opportunity": opportunity,
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := conn.WriteJSON(payload); err != nil {
			zap.S().Warnf("failed to write to feed client, dropping: %v", err)
			conn.Close()
			delete(f.conns, conn)
		}
	}
}

func (f *Feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	conn.Close()
	delete(f.conns, conn)
}
