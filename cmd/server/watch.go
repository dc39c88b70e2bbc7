package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/icco/camfour"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// watcher is one websocket client. Writes are serialised per connection.
type watcher struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *watcher) send(s camfour.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return w.conn.WriteJSON(s)
}

// hub fans match snapshots out to every connected watcher.
type hub struct {
	mu       sync.RWMutex
	watchers map[*watcher]struct{}
}

func newHub() *hub {
	return &hub{watchers: map[*watcher]struct{}{}}
}

func (h *hub) add(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.watchers[w] = struct{}{}
}

func (h *hub) remove(w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watchers, w)
}

// Len is the number of connected watchers.
func (h *hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

// broadcast sends s to every watcher, dropping the ones that fail.
func (h *hub) broadcast(s camfour.Snapshot) {
	h.mu.RLock()
	watchers := make([]*watcher, 0, len(h.watchers))
	for w := range h.watchers {
		watchers = append(watchers, w)
	}
	h.mu.RUnlock()

	for _, w := range watchers {
		if err := w.send(s); err != nil {
			log.Warnw("dropping watcher", zap.Error(err))
			h.remove(w)
			w.conn.Close()
		}
	}
}

// @Summary Watch the match
// @Description Upgrades to a websocket that receives a match snapshot now and after every change
// @Tags match
// @Success 101 {object} camfour.Snapshot
// @Router /match/watch [get]
func (s *server) watchHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorw("websocket upgrade failed", zap.Error(err))
		return
	}

	wt := &watcher{conn: conn}
	if err := wt.send(s.table.Snapshot()); err != nil {
		log.Errorw("could not send first snapshot", zap.Error(err))
		conn.Close()
		return
	}
	s.hub.add(wt)
	log.Infow("watcher connected", "remote", r.RemoteAddr, "watchers", s.hub.Len())

	// Watchers only listen. Reading is how a closed connection is noticed.
	defer func() {
		s.hub.remove(wt)
		conn.Close()
		log.Infow("watcher disconnected", "remote", r.RemoteAddr)
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
