package playback

import "sync"

// Hub fans engine events out to subscribers. The zero value is ready to use.
// Emit methods never block.
type Hub struct {
	mu     sync.RWMutex
	subs   []*Subscription
	closed bool
}

// Subscribe creates a new event subscription. After Close it returns a
// subscription whose Done channel is already closed.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	sub := newSubscription()
	if h.closed {
		sub.close()
		return sub
	}
	h.subs = append(h.subs, sub)
	return sub
}

// Close signals every subscriber. It is idempotent.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, sub := range h.subs {
		sub.close()
	}
	h.subs = nil
}

func (h *Hub) each(fn func(*Subscription)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		fn(sub)
	}
}

// EmitProgress notifies subscribers of a new position.
func (h *Hub) EmitProgress(e Progress) {
	h.each(func(s *Subscription) { s.sendProgress(e) })
}

// EmitVolume notifies subscribers of a volume change.
func (h *Hub) EmitVolume(e VolumeChange) {
	h.each(func(s *Subscription) { s.sendVolume(e) })
}

// EmitMetadata notifies subscribers that the duration is known.
func (h *Hub) EmitMetadata(e MetadataReady) {
	h.each(func(s *Subscription) { s.sendMetadata(e) })
}

// EmitCanPlay notifies subscribers that playback can start.
func (h *Hub) EmitCanPlay() {
	h.each(func(s *Subscription) { s.sendCanPlay(CanPlay{}) })
}

// EmitEnded notifies subscribers that the source finished.
func (h *Hub) EmitEnded() {
	h.each(func(s *Subscription) { s.sendEnded(Ended{}) })
}

// EmitError notifies subscribers of an asynchronous failure.
func (h *Hub) EmitError(e ErrorEvent) {
	h.each(func(s *Subscription) { s.sendError(e) })
}
