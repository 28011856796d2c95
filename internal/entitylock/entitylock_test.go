package entitylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	locker := New()

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(AuctionKey("a1"))
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(100 * time.Microsecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxSeen, "two holders inside the same critical section")
	require.Equal(t, 0, locker.Len(), "idle entries must be released")
}

func TestLocker_IndependentKeysDoNotBlock(t *testing.T) {
	locker := New()

	unlockA := locker.Lock(AuctionKey("a1"))
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locker.Lock(AuctionKey("a2"))
		unlock()
		unlock = locker.Lock(StreamKey("a1"))
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked behind an unrelated holder")
	}
}

func TestLocker_UnlockIsIdempotent(t *testing.T) {
	locker := New()

	unlock := locker.Lock("k")
	unlock()
	unlock()

	require.Equal(t, 0, locker.Len())

	relock := locker.Lock("k")
	relock()
}
