package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int               `json:"status"`           // HTTP Status Code
	Message string            `json:"message"`          // รายละเอียดของ Error
	Errors  map[string]string `json:"errors,omitempty"` // field -> validation tag
}
