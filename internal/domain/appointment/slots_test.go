package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSlots(t *testing.T) {
	grid := DefaultSlots()

	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "18:30", grid[len(grid)-1])

	// 09:00-19:00 is 20 half-hour starts, minus three inside the lunch gap.
	assert.Len(t, grid, 17)

	for _, gap := range []string{"12:30", "13:00", "13:30"} {
		assert.False(t, grid.Contains(gap), gap)
	}
	assert.True(t, grid.Contains("12:00"))
	assert.True(t, grid.Contains("14:00"))
	assert.False(t, grid.Contains("19:00"))
}

func TestSlotsWithoutLunch(t *testing.T) {
	grid := Slots("10:00", "12:00", "", "")
	assert.Equal(t, SlotGrid{"10:00", "10:30", "11:00", "11:30"}, grid)
}

func TestSlotsMalformedScheduleFallsBack(t *testing.T) {
	grid := Slots("late", "early", "12:30", "14:00")
	assert.Equal(t, DefaultSlots(), grid)
}

func TestEndTime(t *testing.T) {
	assert.Equal(t, "10:30", EndTime("10:00", 30))
	assert.Equal(t, "15:15", EndTime("14:30", 45))
	assert.Equal(t, "23:59", EndTime("23:30", 60))
	assert.Equal(t, "bogus", EndTime("bogus", 30))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps("10:00", "11:00", "10:30", "11:30"))
	assert.False(t, Overlaps("10:00", "11:00", "11:00", "12:00"), "touching edges do not overlap")
	assert.False(t, Overlaps("09:00", "09:30", "10:00", "10:30"))
}
