package models

import "time"

// Scan actions
const (
	ActionIn  = "IN"
	ActionOut = "OUT"
)

// Scan sessions. WD = whole day, one tap covers morning and afternoon.
const (
	SessionAM   = "AM"
	SessionPM   = "PM"
	SessionWD   = "WD"
	SessionWDAM = "WD AM"
	SessionWDPM = "WD PM"
)

// RawScanEvent เอกสาร scan ดิบตามที่อยู่ใน store (ใช้ตอน seed / insert เท่านั้น;
// ฝั่งอ่านจะได้เป็น map เพราะรูปแบบ timestamp ไม่แน่นอน)
type RawScanEvent struct {
	StudentID    string      `bson:"studentId" json:"studentId" firestore:"studentId"`
	StudentName  string      `bson:"studentName" json:"studentName" firestore:"studentName"`
	SectionLabel string      `bson:"section" json:"section" firestore:"section"`
	SchoolID     string      `bson:"schoolId" json:"schoolId" firestore:"schoolId"`
	Timestamp    interface{} `bson:"timestamp" json:"timestamp" firestore:"timestamp"`
	Action       string      `bson:"action" json:"action" firestore:"action"`
	Session      string      `bson:"session" json:"session" firestore:"session"`
}

// NormalizedScan canonical scan tuple used by every aggregation step.
type NormalizedScan struct {
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	SectionLabel string    `json:"section"`
	Date         string    `json:"date"` // YYYY-MM-DD in the attendance time zone
	Time         string    `json:"time"` // 03:04 PM
	Action       string    `json:"action"`
	Session      string    `json:"session"`
	Timestamp    time.Time `json:"timestamp"`
}

// ScanQuery filter for fetching scan events from a store. Zero values mean
// "no constraint".
type ScanQuery struct {
	SchoolID     string
	SectionLabel string
	StudentIDs   []string
	From         time.Time
	To           time.Time // exclusive
}
