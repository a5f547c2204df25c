package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student นักเรียน; studentId มีรูปแบบ {schoolId}_{grade SECTION}_{sequence}
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id" firestore:"-"`
	StudentID    string             `bson:"studentId" json:"studentId" firestore:"studentId"`
	Name         string             `bson:"name" json:"name" firestore:"name"`
	Gender       string             `bson:"gender" json:"gender" firestore:"gender"`
	MobileNumber string             `bson:"mobileNumber" json:"mobileNumber" firestore:"mobileNumber"`
	Status       string             `bson:"status" json:"status" firestore:"status"`
	SchoolID     string             `bson:"schoolId" json:"schoolId" firestore:"schoolId"`
	SectionRef   string             `bson:"sectionRef,omitempty" json:"sectionRef,omitempty" firestore:"sectionRef,omitempty"`
}
