package schedule

import "time"

type WorkSchedule struct {
	ID        string
	Name      string
	Type      WorkArrangement
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	Details []ScheduleDetail
}

type WorkArrangement string

const (
	WorkArrangementWFO WorkArrangement = "WFO" // Work From Office
	WorkArrangementWFH WorkArrangement = "WFH" // Work From Home
	WorkArrangementWFA WorkArrangement = "WFA" // Work From Anywhere
)

var WorkArrangementValues = []string{
	string(WorkArrangementWFO),
	string(WorkArrangementWFH),
	string(WorkArrangementWFA),
}

// ScheduleDetail is one weekday-scoped entry within a work schedule. All clock
// fields are UTC time-of-day strings ("HH:MM"); nil means the bound is not
// configured and the corresponding check passes by default.
type ScheduleDetail struct {
	ID             string
	WorkScheduleID string
	WorkDays       []string // lowercase weekday names
	CheckInStart   *string
	CheckInEnd     *string
	BreakStart     *string
	BreakEnd       *string
	CheckOutStart  *string
	CheckOutEnd    *string
	WorkType       WorkArrangement
	Location       *Location
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Location is a geofenced work location. RadiusMeters is always > 0.
type Location struct {
	ID               string
	ScheduleDetailID string
	Name             string
	Latitude         float64
	Longitude        float64
	RadiusMeters     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
