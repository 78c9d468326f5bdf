package utils

import "time"

// Platform timestamps are displayed in Vietnam local time.
var displayZone = time.FixedZone("UTC+7", 7*60*60)

// FormatDate renders a timestamp as "HH:mm dd/MM/yyyy" in UTC+7.
// Zero timestamps render as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(displayZone).Format("15:04 02/01/2006")
}
