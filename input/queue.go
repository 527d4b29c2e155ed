package input

import (
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Queue collects intents pushed from an event goroutine until the frame
// loop polls them.
type Queue struct {
	mu      sync.Mutex
	pending tetris.Intents
	quit    bool
}

// Push records in for the next poll.
func (q *Queue) Push(in tetris.Intents) {
	q.mu.Lock()
	q.pending |= in
	q.mu.Unlock()
}

// Poll returns and clears the pending intents.
func (q *Queue) Poll() tetris.Intents {
	q.mu.Lock()
	defer q.mu.Unlock()
	in := q.pending
	q.pending = 0
	return in
}

// RequestQuit marks the session as finished. Quitting is not an engine
// intent; the frame loop checks Quit.
func (q *Queue) RequestQuit() {
	q.mu.Lock()
	q.quit = true
	q.mu.Unlock()
}

func (q *Queue) Quit() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.quit
}
