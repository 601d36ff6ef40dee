package ledger

import (
	"time"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
)

// Log range keys for activity queries.
const (
	RangeDay   = "day"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// RangeStart computes the lower bound for a time-range filter from wall-clock
// now. Week starts on Monday.
func RangeStart(rangeKey string, now time.Time) (time.Time, error) {
	switch rangeKey {
	case RangeDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case RangeWeek:
		day := (int(now.Weekday()) + 6) % 7 // Mon=0 ... Sun=6
		monday := now.AddDate(0, 0, -day)
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location()), nil
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case RangeYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, domain.ErrInvalidInput
	}
}
