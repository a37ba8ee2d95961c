package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()

	assert.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])

	seen := map[string]bool{}
	for i, s := range slots {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true
		if i > 0 {
			assert.Less(t, slots[i-1], s)
		}
	}
}

func TestGenerateSlotsBounds(t *testing.T) {
	assert.Equal(t, []string{"10:00", "10:45"}, GenerateSlots(10, 11, 45))
	assert.Empty(t, GenerateSlots(10, 10, 30))
	assert.Empty(t, GenerateSlots(12, 10, 30))
	assert.Empty(t, GenerateSlots(9, 18, 0))
}

func TestMarkBooked(t *testing.T) {
	got := MarkBooked([]string{"09:00", "09:30", "10:00"}, []string{"09:30", "11:00"})

	assert.Equal(t, []TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
		{Time: "10:00", Available: true},
	}, got)
}
