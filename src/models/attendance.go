package models

// DailyAttendanceRecord aggregate for one student on one calendar date.
// Each slot keeps the scan time string; empty means unset.
type DailyAttendanceRecord struct {
	StudentID    string `json:"studentId"`
	StudentName  string `json:"studentName"`
	SectionLabel string `json:"section"`
	Date         string `json:"date"`
	Session      string `json:"session"` // session of the first event seen for the day
	AMIn         string `json:"amIn,omitempty"`
	AMOut        string `json:"amOut,omitempty"`
	PMIn         string `json:"pmIn,omitempty"`
	PMOut        string `json:"pmOut,omitempty"`
}

// Weekday one school day column on the SF2 form.
type Weekday struct {
	Day   int    `json:"day"`
	Label string `json:"label"`
}
