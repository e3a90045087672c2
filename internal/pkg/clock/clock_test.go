package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/clock"
)

func TestFixed(t *testing.T) {
	start := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now().UTC()
	now := clock.New().Now()

	assert.False(t, now.Before(before))
	assert.Equal(t, time.UTC, now.Location())
}
