package network

import (
	"sync"

	"skirmish-server/pkg/api"
	"skirmish-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpectatorBuffer is how many frames a slow spectator may lag behind before frames are dropped.
const SpectatorBuffer = 100

// Broadcaster only fans frames out to subscribers; it knows nothing about games.
type Broadcaster struct {
	mu sync.RWMutex
	// spectator id -> personal channel
	subscribers map[string]chan api.TickFrame
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.TickFrame),
	}
}

// Register creates a personal channel. Re-registering an id closes the old channel.
func (b *Broadcaster) Register(id string) chan api.TickFrame {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.TickFrame, SpectatorBuffer)
	b.subscribers[id] = ch
	return ch
}

func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Broadcast delivers to every spectator without blocking the game loop.
func (b *Broadcaster) Broadcast(msg api.TickFrame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			logger.Log.WithFields(logrus.Fields{
				"component":    "broadcaster",
				"spectator_id": id,
				"tick":         msg.Tick,
			}).Debug("Spectator lagging, frame dropped")
		}
	}
}

func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount returns the number of connected spectators.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
