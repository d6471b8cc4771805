package appointment

import (
	"time"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	slotStep = 30 * time.Minute
)

// SlotGrid is the ordered list of bookable HH:mm start times for one day.
type SlotGrid []string

func (g SlotGrid) Contains(hm string) bool {
	for _, s := range g {
		if s == hm {
			return true
		}
	}
	return false
}

// Slots walks half-hour starts from opening (inclusive) to closing (exclusive),
// skipping starts that fall inside the lunch gap. Malformed schedule values
// fall back to the defaults so a misconfigured salon still gets a grid.
func Slots(opening, closing, lunchStart, lunchEnd string) SlotGrid {
	open := parseHMOr(opening, "09:00")
	close := parseHMOr(closing, "19:00")

	var lStart, lEnd time.Time
	hasLunch := lunchStart != "" && lunchEnd != ""
	if hasLunch {
		lStart = parseHMOr(lunchStart, "12:30")
		lEnd = parseHMOr(lunchEnd, "14:00")
	}

	var grid SlotGrid
	for cur := open; cur.Before(close); cur = cur.Add(slotStep) {
		if hasLunch && !cur.Before(lStart) && cur.Before(lEnd) {
			continue
		}
		grid = append(grid, cur.Format(TimeLayout))
	}
	return grid
}

// SalonSlots builds the grid from a salon's schedule columns.
func SalonSlots(s *models.Salon) SlotGrid {
	return Slots(s.OpeningTime, s.ClosingTime, s.LunchStart, s.LunchEnd)
}

// DefaultSlots is the grid every new salon starts with: 09:00 through 18:30
// minus the 12:30-14:00 lunch gap.
func DefaultSlots() SlotGrid {
	return Slots("09:00", "19:00", "12:30", "14:00")
}

func parseHMOr(hm, fallback string) time.Time {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		t, _ = time.Parse(TimeLayout, fallback)
	}
	return t
}

// EndTime shifts a start by a service duration, clamped to the same day.
func EndTime(start string, durationMin int) string {
	t, err := time.Parse(TimeLayout, start)
	if err != nil {
		return start
	}
	end := t.Add(time.Duration(durationMin) * time.Minute)
	if end.Day() != t.Day() {
		return "23:59"
	}
	return end.Format(TimeLayout)
}

// Overlaps reports whether two [start,end) HH:mm ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, err1 := time.Parse(TimeLayout, aStart)
	ae, err2 := time.Parse(TimeLayout, aEnd)
	bs, err3 := time.Parse(TimeLayout, bStart)
	be, err4 := time.Parse(TimeLayout, bEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return as.Before(be) && ae.After(bs)
}
