package render

import (
	"sync"

	"github.com/ciekce/cpurt/imgbuf"
)

// tile is one unit of work: a half-open pixel rectangle within buf. A
// sentinel tile (buf == nil) tells a worker to shut down.
type tile struct {
	buf                        *imgbuf.Buffer
	startX, endX, startY, endY uint32
}

func (t tile) isShutdown() bool { return t.buf == nil }

// tileQueue is an unbounded blocking FIFO, guarded by a mutex and
// signalled by a condition variable on push — the Go equivalent of the
// source renderer's std::queue + std::mutex + std::condition_variable.
type tileQueue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []tile
}

func newTileQueue() *tileQueue {
	q := &tileQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *tileQueue) push(t tile) {
	q.mu.Lock()
	q.items = append(q.items, t)
	q.mu.Unlock()
	q.cond.Signal()
}

// wait blocks until an item is available, then pops and returns it
// in FIFO order.
func (q *tileQueue) wait() tile {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		q.cond.Wait()
	}

	t := q.items[0]
	q.items = q.items[1:]
	return t
}
