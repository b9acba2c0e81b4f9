// AngelaMos | 2026
// repository_test.go

package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPincodeBand(t *testing.T) {
	lo, hi, ok := pincodeBand("10003")
	require.True(t, ok)
	assert.Equal(t, "10001", lo)
	assert.Equal(t, "10005", hi)
}

func TestPincodeBandTrimsWhitespace(t *testing.T) {
	lo, hi, ok := pincodeBand("  560001 ")
	require.True(t, ok)
	assert.Equal(t, "559999", lo)
	assert.Equal(t, "560003", hi)
}

func TestPincodeBandDisabled(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12a45"} {
		_, _, ok := pincodeBand(input)
		assert.False(t, ok, "input %q should disable the filter", input)
	}
}

func TestSearchConditionsBaseOnly(t *testing.T) {
	conditions, args := searchConditions(SearchParams{})

	assert.Equal(t, []string{"is_approved = true"}, conditions)
	assert.Empty(t, args)
}

func TestSearchConditionsAllFilters(t *testing.T) {
	conditions, args := searchConditions(SearchParams{
		Pincode:   "10003",
		Amenities: []string{"parking", "lift"},
		MaxRent:   20000,
		BHK:       "2",
	})

	require.Len(t, conditions, 5)
	assert.Equal(t, "is_approved = true", conditions[0])
	assert.Equal(t, "pincode BETWEEN $1 AND $2", conditions[1])
	assert.Equal(t, "amenities @> $3", conditions[2])
	assert.Equal(t, "rent_per_month <= $4", conditions[3])
	assert.Equal(t, "bhk = $5", conditions[4])

	require.Len(t, args, 5)
	assert.Equal(t, "10001", args[0])
	assert.Equal(t, "10005", args[1])
	assert.Equal(t, 20000.0, args[3])
	assert.Equal(t, "2", args[4])
}

func TestSearchConditionsSkipsDisabledFilters(t *testing.T) {
	conditions, args := searchConditions(SearchParams{
		Pincode: "not-a-number",
		MaxRent: 15000,
	})

	// The unparseable pincode drops out; rent takes the first placeholder.
	require.Len(t, conditions, 2)
	assert.Equal(t, "is_approved = true", conditions[0])
	assert.Equal(t, "rent_per_month <= $1", conditions[1])

	require.Len(t, args, 1)
	assert.Equal(t, 15000.0, args[0])
}
