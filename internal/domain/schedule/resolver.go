package schedule

import (
	"strings"
	"time"
)

// ResolveDetail finds the schedule detail applicable to the given local
// weekday. At most one detail matches a day; the first match wins.
func (ws WorkSchedule) ResolveDetail(weekday time.Weekday) (*ScheduleDetail, bool) {
	name := strings.ToLower(weekday.String())
	for i := range ws.Details {
		for _, day := range ws.Details[i].WorkDays {
			if strings.ToLower(day) == name {
				return &ws.Details[i], true
			}
		}
	}
	return nil, false
}

// BypassesChecks reports whether the schedule is exempt from time-window and
// geofence validation. Anywhere-work carries no restrictions at all.
func (ws WorkSchedule) BypassesChecks() bool {
	return ws.Type == WorkArrangementWFA
}
