package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tick(a *Animation, n int) {
	for i := 0; i < n; i++ {
		a.Update()
	}
}

func TestAnimationIdleUntilStarted(t *testing.T) {
	a := NewAnimation(0, 3, 1, 3)
	tick(a, 20)
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Playing())
}

func TestAnimationAdvancesAndWraps(t *testing.T) {
	a := NewAnimation(0, 3, 1, 3)
	a.Start()

	// The counter starts at 3 and the frame advances once it drops below zero.
	tick(a, 4)
	assert.Equal(t, 1, a.Frame())

	tick(a, 4*3)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationStopRestsOnFirstFrame(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0)
	a.Start()
	tick(a, 2)
	assert.Equal(t, 2, a.Frame())

	a.Stop()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Playing())
	tick(a, 5)
	assert.Equal(t, 0, a.Frame())
}
