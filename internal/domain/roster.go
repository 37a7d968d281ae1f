package domain

// Shift is an open slot that needs a staff member.
// Times are "HH:MM" or "HH:MM:SS" in store-local time.
type Shift struct {
	ShiftID       int64  `json:"shiftId"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	RequiredSkill string `json:"requiredSkill"`
}

// AvailabilitySlot is a weekly window a staff member can work.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Staff is a candidate for shift assignment.
type Staff struct {
	StaffID             int64              `json:"staffId"`
	Skills              []string           `json:"skills"`
	HourlyRate          float64            `json:"hourlyRate"`
	HoursWorkedThisWeek int                `json:"hoursWorkedThisWeek"`
	Availability        []AvailabilitySlot `json:"availability"`
}

// RosterInput is a day's open shifts and the staff that could fill them.
// Date is "YYYY-MM-DD".
type RosterInput struct {
	Date   string  `json:"date" binding:"required"`
	Shifts []Shift `json:"shifts" binding:"dive"`
	Staff  []Staff `json:"staff"`
}

// ShiftAssignment pairs a shift with the staff member chosen for it.
type ShiftAssignment struct {
	ShiftID    int64   `json:"shiftId"`
	StaffID    int64   `json:"staffId"`
	Confidence float64 `json:"confidence"`
}

// RosterDecision is the assignment plan for a day.
type RosterDecision struct {
	Assignments        []ShiftAssignment `json:"assignments"`
	CoveragePercentage float64           `json:"coveragePercentage"`
	OvertimeRisk       bool              `json:"overtimeRisk"`
}
