package surface

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// DefaultQueueSize bounds how many unread key presses are kept.
const DefaultQueueSize = 16

// KeyQueue buffers key presses from a backend's event goroutine and serves
// them to the game loop through PollKey.
type KeyQueue struct {
	keys chan game.Key
	done chan struct{}
	once sync.Once
}

// NewKeyQueue creates a queue holding at most size pending keys.
func NewKeyQueue(size int) *KeyQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &KeyQueue{
		keys: make(chan game.Key, size),
		done: make(chan struct{}),
	}
}

// Push enqueues k without blocking. It reports false when the queue is full
// or closed; the key is dropped in that case.
func (q *KeyQueue) Push(k game.Key) bool {
	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.keys <- k:
		return true
	default:
		return false
	}
}

// PollKey implements game.Display.PollKey.
func (q *KeyQueue) PollKey(ctx context.Context, timeout *time.Duration) (game.Key, bool, error) {
	select {
	case <-q.done:
		return "", false, game.ErrDisplayClosed
	default:
	}

	var expired <-chan time.Time
	if timeout != nil {
		timer := time.NewTimer(*timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case k := <-q.keys:
		return k, true, nil
	case <-expired:
		return "", false, nil
	case <-q.done:
		return "", false, game.ErrDisplayClosed
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

// Close marks the display as shut down. It is safe to call more than once.
func (q *KeyQueue) Close() {
	q.once.Do(func() { close(q.done) })
}

// Done is closed once Close has been called.
func (q *KeyQueue) Done() <-chan struct{} {
	return q.done
}
