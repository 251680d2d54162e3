package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciekce/cpurt/imgbuf"
)

func TestTileQueueFIFOOrder(t *testing.T) {
	q := newTileQueue()

	q.push(tile{startX: 1})
	q.push(tile{startX: 2})
	q.push(tile{startX: 3})

	assert.Equal(t, uint32(1), q.wait().startX)
	assert.Equal(t, uint32(2), q.wait().startX)
	assert.Equal(t, uint32(3), q.wait().startX)
}

func TestTileQueueWaitBlocksUntilPush(t *testing.T) {
	q := newTileQueue()

	done := make(chan tile, 1)
	go func() {
		done <- q.wait()
	}()

	select {
	case <-done:
		t.Fatal("wait returned before any push")
	case <-time.After(20 * time.Millisecond):
	}

	q.push(tile{startX: 42})

	select {
	case got := <-done:
		require.Equal(t, uint32(42), got.startX)
	case <-time.After(time.Second):
		t.Fatal("wait never woke up after push")
	}
}

func TestSentinelTileIsShutdown(t *testing.T) {
	assert.True(t, tile{}.isShutdown())
	assert.False(t, tile{buf: imgbuf.New(1, 1)}.isShutdown())
}
