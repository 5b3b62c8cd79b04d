package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimePointLayout is the backend wire format. Parsing accepts 0 to 9
// fractional digits; the trailing Z is mandatory.
const TimePointLayout = "2006-01-02T15:04:05.999999Z"

type TimePoint string

func NewTimePoint(t time.Time) TimePoint {
	return TimePoint(t.UTC().Format(TimePointLayout))
}

func (p TimePoint) Parse() (time.Time, error) {
	raw := strings.TrimSpace(string(p))
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	parsed, err := time.Parse(TimePointLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, raw, err)
	}

	return parsed.UTC(), nil
}
