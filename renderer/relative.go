package renderer

import (
	"fmt"

	"github.com/aldawood/crowdfund/date"
)

// RelativeDate formats day relative to now ("today", "yesterday", "3 days
// ago", "in 2 months"). The reference clock is an explicit parameter so
// reports can be rendered for any point in time and tests stay deterministic.
func RelativeDate(day, now date.Date) string {
	days := now.Sub(day)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days == -1:
		return "tomorrow"
	case days > 0:
		return ago(days)
	default:
		return "in " + span(-days)
	}
}

func ago(days int) string {
	return span(days) + " ago"
}

// span expresses a positive day count in the largest round unit.
func span(days int) string {
	switch {
	case days < 30:
		return fmt.Sprintf("%d days", days)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	default:
		years := days / 365
		if years == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	}
}
