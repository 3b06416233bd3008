package booking

import (
	"time"

	"github.com/bookora/marketplace-api/internal/models"
)

const (
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// ParseMinutes converts an "HH:MM" string to minutes since midnight.
func ParseMinutes(hm string) (int, bool) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func formatMinutes(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format(TimeLayout)
}

// ValidateWindows checks a full weekly schedule before it replaces the
// stored one: weekday in range, at most one window per weekday, parseable
// times, end strictly after start.
func ValidateWindows(windows []models.AvailabilityWindow) error {
	var seen [7]bool
	for _, w := range windows {
		if w.Weekday < 0 || w.Weekday > 6 {
			return ErrInvalidWindow
		}
		if seen[w.Weekday] {
			return ErrInvalidWindow
		}
		seen[w.Weekday] = true

		start, ok := ParseMinutes(w.StartTime)
		if !ok {
			return ErrInvalidWindow
		}
		end, ok := ParseMinutes(w.EndTime)
		if !ok {
			return ErrInvalidWindow
		}
		if end <= start {
			return ErrInvalidWindow
		}
	}
	return nil
}

// DefaultWeek is the fallback schedule for sellers who have not configured
// hours yet: 09:00-17:00, closed Sundays. It applies only when the seller
// has zero windows of any kind; a single explicit row suppresses it.
func DefaultWeek(sellerID uint) []models.AvailabilityWindow {
	week := make([]models.AvailabilityWindow, 0, 7)
	for wd := 0; wd < 7; wd++ {
		week = append(week, models.AvailabilityWindow{
			SellerID:  sellerID,
			Weekday:   wd,
			StartTime: "09:00",
			EndTime:   "17:00",
			Active:    wd != int(time.Sunday),
		})
	}
	return week
}
