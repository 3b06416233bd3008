package booking

import (
	"time"

	"github.com/bookora/marketplace-api/internal/models"
)

// SlotGridMinutes is the fixed granularity of candidate start times.
const SlotGridMinutes = 30

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotInput struct {
	Date        time.Time
	Now         time.Time
	Windows     []models.AvailabilityWindow
	Held        []models.Appointment
	DurationMin int
}

// ComputeSlots derives the bookable start times for one seller and one
// calendar date: a 30-minute grid inside the weekday's window, minus every
// start already claimed by a holding appointment. The result is
// chronological and fully determined by its inputs.
func ComputeSlots(in SlotInput) ([]TimeSlot, error) {
	day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, time.UTC)
	todayDay := time.Date(in.Now.Year(), in.Now.Month(), in.Now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(todayDay) {
		return nil, ErrPastDate
	}

	windows := in.Windows
	if len(windows) == 0 {
		windows = DefaultWeek(0)
	}

	weekday := int(in.Date.Weekday())
	var window *models.AvailabilityWindow
	for i := range windows {
		if windows[i].Weekday == weekday {
			window = &windows[i]
			break
		}
	}
	if window == nil || !window.Active {
		return []TimeSlot{}, nil
	}

	dayStart, ok := ParseMinutes(window.StartTime)
	if !ok {
		return nil, ErrInvalidWindow
	}
	dayEnd, ok := ParseMinutes(window.EndTime)
	if !ok {
		return nil, ErrInvalidWindow
	}

	held := make(map[string]bool, len(in.Held))
	for _, ap := range in.Held {
		if Holds(Status(ap.Status)) {
			held[ap.StartTime] = true
		}
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = SlotGridMinutes
	}

	var slots []TimeSlot
	for cur := dayStart; cur+duration <= dayEnd; cur += SlotGridMinutes {
		start := formatMinutes(cur)
		if held[start] {
			continue
		}
		slots = append(slots, TimeSlot{
			Start: start,
			End:   formatMinutes(cur + duration),
		})
	}

	if slots == nil {
		slots = []TimeSlot{}
	}
	return slots, nil
}

// SlotEnd gives the end time of a slot starting at start for a service of
// the given duration.
func SlotEnd(start string, durationMin int) string {
	m, ok := ParseMinutes(start)
	if !ok {
		return start
	}
	return formatMinutes(m + durationMin)
}
