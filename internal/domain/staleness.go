package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	minReductionPercent = 25
	maxReductionPercent = 100

	// reductionRampHours is how long a case waits before accepting it
	// clears the agent's staleness entirely.
	reductionRampHours = 3.5
)

// ComputeStaleness returns now - lastContact rounded to whole seconds and
// never negative.
func ComputeStaleness(lastContact TimePoint, now time.Time) (time.Duration, error) {
	at, err := lastContact.Parse()
	if err != nil {
		return 0, err
	}

	elapsed := now.Sub(at).Round(time.Second)
	if elapsed < 0 {
		return 0, nil
	}

	return elapsed, nil
}

// FormatDuration renders d as D.HH:MM:SS. Fractional seconds are truncated.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	days := total / 86400
	remainder := total % 86400
	hours := remainder / 3600
	remainder %= 3600
	minutes := remainder / 60
	seconds := remainder % 60

	return fmt.Sprintf("%d.%02d:%02d:%02d", days, hours, minutes, seconds)
}

// ReductionPercent maps how long a case has waited to the share of
// staleness an agent gives up by accepting it.
func ReductionPercent(caseAge time.Duration) int {
	hours := caseAge.Hours()
	reduction := int(math.Round(minReductionPercent + (maxReductionPercent-minReductionPercent)*hours/reductionRampHours))

	return clampInt(reduction, minReductionPercent, maxReductionPercent)
}

func ProjectNewStaleness(current time.Duration, reduction int) time.Duration {
	if current <= 0 {
		return 0
	}

	remaining := 100 - clampInt(reduction, 0, 100)

	return time.Duration(float64(current) * float64(remaining) / 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
