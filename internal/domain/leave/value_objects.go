package leave

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end date precedes start date")
	ErrInvalidLeaveType = errors.New("invalid leave type")
)

// DateRange is a pair of calendar dates, both endpoints inclusive.
// Hour and zone information is normalized away on construction.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)

	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days counts both endpoints, so a same-day range is 1 day.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) Contains(t time.Time) bool {
	d := truncateToDate(t)
	return !d.Before(r.start) && !d.After(r.end)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
