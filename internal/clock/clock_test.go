package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local)
	m := NewManual(start)
	assert.Equal(t, start, m.Now())

	m.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), m.Now())

	m.AdvanceDays(2)
	assert.Equal(t, time.Date(2024, 6, 12, 11, 0, 0, 0, time.Local), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fixed(at)
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestSystem(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	assert.False(t, got.Before(before))
}
