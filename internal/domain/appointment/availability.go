package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultStartHour   = 9
	DefaultEndHour     = 18
	DefaultStepMinutes = 30
)

type AvailabilityInput struct {
	Slug           string
	ProfessionalID uuid.UUID
	Date           time.Time
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots lists "HH:MM" start times from startHour:00 (inclusive) to
// endHour:00 (exclusive) every stepMinutes. It knows nothing about opening
// hours, staff hours or existing bookings.
func GenerateSlots(startHour, endHour, stepMinutes int) []string {
	if stepMinutes <= 0 || endHour <= startHour {
		return []string{}
	}

	slots := make([]string, 0, (endHour-startHour)*60/stepMinutes)
	for m := startHour * 60; m < endHour*60; m += stepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// DefaultSlots is the fixed public booking grid: 09:00 to 17:30 every 30 minutes.
func DefaultSlots() []string {
	return GenerateSlots(DefaultStartHour, DefaultEndHour, DefaultStepMinutes)
}

// MarkBooked tags every slot whose start time matches a booked time.
// Overlaps with longer services are not considered.
func MarkBooked(slots []string, booked []string) []TimeSlot {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		_, isTaken := taken[s]
		out = append(out, TimeSlot{Time: s, Available: !isTaken})
	}
	return out
}
