package aggregate

import (
	"fmt"
	"time"
)

// FormatDuration renders a total as "2h 30m", or "45m" when there is no
// whole hour. Sub-minute remainders are floored, so 59s renders as "0m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	hours := minutes / 60
	minutes %= 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
