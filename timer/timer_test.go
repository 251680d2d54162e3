package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsAdvancesMonotonically(t *testing.T) {
	c := New()
	first := c.Seconds()

	time.Sleep(5 * time.Millisecond)
	second := c.Seconds()

	assert.GreaterOrEqual(t, second, first)
	assert.Greater(t, second, 0.0)
}

func TestNewResetsTheEpoch(t *testing.T) {
	a := New()
	time.Sleep(5 * time.Millisecond)
	b := New()

	assert.Greater(t, a.Seconds(), b.Seconds())
}
