package models

// TopAttendee ranking row (credit = sum of daily 0 / 0.5 / 1.0 values)
type TopAttendee struct {
	StudentID    string  `json:"studentId"`
	StudentName  string  `json:"studentName"`
	SectionLabel string  `json:"section"`
	Credit       float64 `json:"credit"`
	Days         int     `json:"days"`
}

// DailyTotal attendance counts for one calendar date.
type DailyTotal struct {
	Date       string  `json:"date"`
	Present    int     `json:"present"`
	HalfDay    int     `json:"halfDay"`
	Absent     int     `json:"absent"`
	Credit     float64 `json:"credit"`
	Scanned    int     `json:"scanned"`
	SF2Present int     `json:"sf2Present"` // students with an AM-in scan
}

// SectionTotal attendance counts for one section label.
type SectionTotal struct {
	SectionLabel string  `json:"section"`
	Grade        string  `json:"grade"`
	Students     int     `json:"students"`
	StudentDays  int     `json:"studentDays"`
	Credit       float64 `json:"credit"`
}

// AttendanceReport dashboard summary for a date range.
type AttendanceReport struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	SectionLabel  string         `json:"section,omitempty"`
	TopAttendees  []TopAttendee  `json:"topAttendees"`
	DailyTotals   []DailyTotal   `json:"dailyTotals"`
	SectionTotals []SectionTotal `json:"sectionTotals"`
}
