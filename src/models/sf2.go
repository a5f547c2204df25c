package models

import "strings"

// SF2Request payload สำหรับสร้างแบบฟอร์ม SF2 (attendance เป็น bool ต่อวันของเดือน)
type SF2Request struct {
	SchoolID    string       `json:"schoolId" validate:"required"`
	SchoolName  string       `json:"schoolName" validate:"required"`
	SchoolYear  string       `json:"schoolYear" validate:"required"`
	Month       string       `json:"month" validate:"required"`
	Year        int          `json:"year,omitempty" validate:"omitempty,gte=1900,lte=9999"`
	GradeLevel  string       `json:"gradeLevel"`
	Section     string       `json:"section" validate:"required"`
	Adviser     string       `json:"adviser"`
	DaysInMonth int          `json:"daysInMonth" validate:"required,gte=28,lte=31"`
	Students    []SF2Student `json:"students" validate:"dive"`
}

type SF2Student struct {
	Name       string `json:"name" validate:"required"`
	Gender     string `json:"gender"`
	Attendance []bool `json:"attendance"`
}

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// GenderBand maps free-form gender values onto the two SF2 bands. Anything
// that does not read as male is listed with the female band.
func GenderBand(gender string) string {
	switch strings.ToUpper(strings.TrimSpace(gender)) {
	case "M", "MALE", "BOY":
		return GenderMale
	}
	return GenderFemale
}
