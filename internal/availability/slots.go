package availability

import (
	"fmt"
	"strings"
	"time"
)

// Slot is one bookable start time: Time is "15:04", Label is what clients see.
type Slot struct {
	Time  string
	Label string
}

var DefaultSlots = []Slot{
	{Time: "09:00", Label: "9:00 AM"},
	{Time: "10:00", Label: "10:00 AM"},
	{Time: "11:00", Label: "11:00 AM"},
	{Time: "14:00", Label: "2:00 PM"},
	{Time: "15:00", Label: "3:00 PM"},
	{Time: "16:00", Label: "4:00 PM"},
}

const fallbackSlotTime = "10:00:00"

// ParseSlots builds a catalogue from "HH:MM" entries, e.g. "09:00,14:00".
func ParseSlots(list string) ([]Slot, error) {
	var slots []Slot
	for _, raw := range strings.Split(list, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		t, err := time.Parse("15:04", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid time slot %q: %w", raw, err)
		}
		slots = append(slots, Slot{Time: t.Format("15:04"), Label: t.Format("3:04 PM")})
	}
	return slots, nil
}

func Labels(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

// SlotTime maps a slot label ("2:00 PM") or slot time ("14:00") from the
// catalogue to a wall-clock "HH:MM:SS". Unknown slots fall back to 10:00.
func SlotTime(slots []Slot, slot string) string {
	slot = strings.TrimSpace(slot)
	for _, s := range slots {
		if strings.EqualFold(s.Label, slot) || s.Time == slot {
			return s.Time + ":00"
		}
	}
	return fallbackSlotTime
}

// At combines a calendar date with a slot into a UTC timestamp.
func At(date time.Time, slots []Slot, slot string) time.Time {
	clock, _ := time.Parse("15:04:05", SlotTime(slots, slot))
	y, m, d := date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
