// AngelaMos | 2026
// database_test.go

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitteredDuration(t *testing.T) {
	base := time.Hour
	got := jitteredDuration(base)
	assert.GreaterOrEqual(t, got, base)
	assert.Less(t, got, base+base/7)
}

func TestJitteredDurationTinyBase(t *testing.T) {
	// Lifetimes too small to carve a jitter from come back unchanged
	// instead of panicking.
	for _, base := range []time.Duration{0, time.Nanosecond, 6 * time.Nanosecond} {
		assert.Equal(t, base, jitteredDuration(base))
	}
}
