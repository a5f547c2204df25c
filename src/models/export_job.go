package models

import "time"

// Export job states
const (
	ExportPending   = "pending"
	ExportRunning   = "running"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportJobRequest คำขอสร้าง SF2 แบบ async จากข้อมูลใน store
type ExportJobRequest struct {
	SchoolID   string `json:"schoolId" validate:"required"`
	SchoolName string `json:"schoolName" validate:"required"`
	SectionID  string `json:"sectionId" validate:"required"`
	SchoolYear string `json:"schoolYear"`
	Year       int    `json:"year" validate:"required,gte=1900,lte=9999"`
	Month      int    `json:"month" validate:"required,gte=1,lte=12"`
}

// ExportJob status record, stored in Redis next to the rendered artifact.
type ExportJob struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	Request   ExportJobRequest `json:"request"`
	Filename  string           `json:"filename,omitempty"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
