package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameFiresFromBothEdges(t *testing.T) {
	bursts := Frame()
	require.Len(t, bursts, 2)

	assert.Equal(t, 0.0, bursts[0].OriginX)
	assert.Equal(t, 60, bursts[0].Angle)
	assert.Equal(t, 1.0, bursts[1].OriginX)
	assert.Equal(t, 120, bursts[1].Angle)
	for _, b := range bursts {
		assert.Equal(t, 2, b.ParticleCount)
		assert.Equal(t, 55, b.Spread)
		assert.Equal(t, ConfettiColors, b.Colors)
	}
}

func TestCelebrateEmitsAtLeastOneFrame(t *testing.T) {
	var frames int
	Celebrate(0, func([]Burst) { frames++ })
	assert.Equal(t, 1, frames)
}

func TestCelebrateStopsAtDeadline(t *testing.T) {
	var frames int
	start := time.Now()
	Celebrate(60*time.Millisecond, func([]Burst) { frames++ })
	elapsed := time.Since(start)

	assert.Greater(t, frames, 1, "the loop reschedules itself until the deadline")
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
	assert.Less(t, elapsed, time.Second, "the loop must not run past its deadline")
}
