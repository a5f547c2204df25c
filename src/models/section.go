package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Section ห้องเรียน (grade ฝังอยู่ใน sectionId เช่น "G7")
type Section struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" firestore:"-"`
	SectionID   string             `bson:"sectionId" json:"sectionId" firestore:"sectionId"`
	SectionName string             `bson:"sectionName" json:"sectionName" firestore:"sectionName"`
	Adviser     string             `bson:"adviser" json:"adviser" firestore:"adviser"`
	SchoolID    string             `bson:"schoolId" json:"schoolId" firestore:"schoolId"`
}

// SectionGroup sections sharing a grade bucket ("Unassigned" when the grade
// cannot be read from the sectionId).
type SectionGroup struct {
	Grade    string    `json:"grade"`
	Sections []Section `json:"sections"`
}
