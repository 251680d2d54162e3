// Package render implements the path-tracing integrator and the
// tile-parallel worker pool that drives it across an output buffer.
package render

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/ciekce/cpurt/atomctr"
	"github.com/ciekce/cpurt/camera"
	"github.com/ciekce/cpurt/config"
	"github.com/ciekce/cpurt/imgbuf"
	"github.com/ciekce/cpurt/rng"
	"github.com/ciekce/cpurt/scene"
	"github.com/ciekce/cpurt/timer"
)

// Renderer owns the worker pool and tile queue for one Scene. Workers
// are started lazily on the first Render call and stopped by Close.
type Renderer struct {
	scene *scene.Scene
	cfg   config.Config

	queue       *tileQueue
	workerCount int
	wg          sync.WaitGroup

	startOnce sync.Once

	mu           sync.Mutex
	completeCond *sync.Cond
	tileCounter  atomctr.Ctr
}

// NewRenderer creates a renderer over scene using cfg for sampling,
// bounce, thread, tiling and post-processing parameters.
func NewRenderer(s *scene.Scene, cfg config.Config) *Renderer {
	r := &Renderer{
		scene: s,
		cfg:   cfg,
		queue: newTileQueue(),
	}
	r.completeCond = sync.NewCond(&r.mu)
	return r
}

func (r *Renderer) threadCount() int {
	if r.cfg.Threads != 0 {
		return int(r.cfg.Threads)
	}
	return runtime.NumCPU()
}

func (r *Renderer) startWorkers(cam *camera.Camera) {
	r.startOnce.Do(func() {
		n := r.threadCount()
		slog.Info("launching render workers", "count", n)

		r.workerCount = n
		r.wg.Add(n)

		for i := 0; i < n; i++ {
			go r.workerLoop(cam)
		}
	})
}

func (r *Renderer) workerLoop(cam *camera.Camera) {
	defer r.wg.Done()

	workerRng := rng.New(nil)

	for {
		t := r.queue.wait()
		if t.isShutdown() {
			return
		}

		r.renderTile(cam, t, workerRng)

		r.mu.Lock()
		r.tileCounter.Dec()
		r.completeCond.Broadcast()
		r.mu.Unlock()
	}
}

func (r *Renderer) renderTile(cam *camera.Camera, t tile, workerRng *rng.JSF32) {
	for y := t.startY; y < t.endY; y++ {
		for x := t.startX; x < t.endX; x++ {
			sum := traceAccumulate(r.scene, cam, workerRng, x, y, r.cfg)
			t.buf.Set(x, y, postProcess(sum, r.cfg.Samples, r.cfg))
		}
	}
}

// Render enqueues one tile per TileSize x TileSize block of buf (sized
// width x height), blocks until every tile has been rendered by the
// worker pool, and returns. Workers are started on the first call and
// persist across subsequent calls until Close.
func (r *Renderer) Render(cam *camera.Camera, buf *imgbuf.Buffer) {
	r.startWorkers(cam)

	width, height := buf.Width, buf.Height
	tileSize := r.cfg.TileSize
	if tileSize == 0 {
		tileSize = 1
	}

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	total := int64(tilesX) * int64(tilesY)

	slog.Info("total tiles", "count", total)

	r.mu.Lock()
	r.tileCounter.Set(total)
	r.mu.Unlock()

	clock := timer.New()

	for y := uint32(0); y < height; y += tileSize {
		for x := uint32(0); x < width; x += tileSize {
			r.queue.push(tile{
				buf:    buf,
				startX: x,
				endX:   minU32(width, x+tileSize),
				startY: y,
				endY:   minU32(height, y+tileSize),
			})
		}
	}

	r.waitForCompletion(total, clock)

	elapsed := clock.Seconds()
	slog.Info("render complete",
		"elapsed_ms", elapsed*1000,
		"tiles_per_sec", float64(total)/elapsed)
}

// waitForCompletion blocks until tileCounter reaches zero. Each time it
// wakes (on a tile completion) it logs a progress line if more than four
// seconds of wall-clock time have passed since the previous one.
func (r *Renderer) waitForCompletion(total int64, clock timer.Clock) {
	const progressInterval = 4.0

	prevRemaining := total
	prevTime := 0.0

	r.mu.Lock()
	defer r.mu.Unlock()

	for r.tileCounter.Value() > 0 {
		remaining := r.tileCounter.Value()
		now := clock.Seconds()

		if now-prevTime > progressInterval {
			rate := float64(prevRemaining-remaining) / (now - prevTime)
			eta := float64(remaining) / rate

			slog.Info("render progress",
				"remaining", remaining,
				"tiles_per_sec", rate,
				"eta_sec", eta)

			prevTime = now
			prevRemaining = remaining
		}

		r.completeCond.Wait()
	}
}

// Close posts one shutdown sentinel per worker and joins them all.
// The queue's FIFO ordering guarantees sentinels are only observed
// after any tiles already queued ahead of them complete.
func (r *Renderer) Close() {
	for i := 0; i < r.workerCount; i++ {
		r.queue.push(tile{})
	}
	r.wg.Wait()
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
