package entitylock

import "sync"

// Locker hands out one mutex per entity key. Unrelated keys never contend,
// and an entry is dropped as soon as nobody holds or waits on it.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty Locker
func New() *Locker {
	return &Locker{entries: make(map[string]*entry)}
}

// AuctionKey is the lock key for an auction ledger
func AuctionKey(auctionID string) string {
	return "auction:" + auctionID
}

// StreamKey is the lock key for a stream ledger
func StreamKey(streamID string) string {
	return "stream:" + streamID
}

// Lock blocks until the key is held and returns the matching unlock func
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or awaited
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
