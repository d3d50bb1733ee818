package identity

import "sync"

// Broadcaster tracks the current session and fans session-change events out
// to subscribers. Both provider implementations embed it so the stream
// semantics (immediate replay of the current session, then live updates) are
// identical regardless of backend.
type Broadcaster struct {
	mu      sync.Mutex
	current *Session
	subs    map[int]chan *Session
	nextID  int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan *Session)}
}

// Current returns the last published session (nil if signed out).
func (b *Broadcaster) Current() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe registers a listener. The returned channel immediately carries
// the current session so late subscribers never miss the initial state. The
// cancel func must be called when done.
func (b *Broadcaster) Subscribe() (<-chan *Session, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan *Session, 4)
	ch <- b.current
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish records session as current and delivers it to every subscriber.
// Delivery never blocks; a subscriber that has fallen 4 events behind loses
// the oldest ones, which is safe because every event is a full snapshot.
func (b *Broadcaster) Publish(session *Session) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = session
	for _, sub := range b.subs {
		select {
		case sub <- session:
		default:
			// drop oldest, enqueue newest
			select {
			case <-sub:
			default:
			}
			sub <- session
		}
	}
}
