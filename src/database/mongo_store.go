package database

import (
	"context"
	"errors"
	"fmt"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/roster"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore serves scan events and the roster from MongoDB.
type MongoStore struct {
	scans    *mongo.Collection
	sections *mongo.Collection
	students *mongo.Collection
}

func NewMongoStore(scans, sections, students *mongo.Collection) *MongoStore {
	return &MongoStore{scans: scans, sections: sections, students: students}
}

// NewDefaultMongoStore ใช้ collection ที่ ConnectMongoDB เตรียมไว้
func NewDefaultMongoStore() *MongoStore {
	return NewMongoStore(ScanEventCollection, SectionCollection, StudentCollection)
}

// ScanFilter builds the Mongo filter for q. Timestamps are stored in
// several shapes, so only native dates are range-filtered here; other shapes
// pass through and are trimmed after normalization.
func ScanFilter(q models.ScanQuery) bson.M {
	filter := bson.M{}
	if q.SchoolID != "" {
		filter["schoolId"] = q.SchoolID
	}
	if q.SectionLabel != "" {
		filter["section"] = q.SectionLabel
	}
	if len(q.StudentIDs) > 0 {
		filter["studentId"] = bson.M{"$in": q.StudentIDs}
	}
	if !q.From.IsZero() || !q.To.IsZero() {
		dateRange := bson.M{}
		if !q.From.IsZero() {
			dateRange["$gte"] = q.From
		}
		if !q.To.IsZero() {
			dateRange["$lt"] = q.To
		}
		filter["$or"] = bson.A{
			bson.M{"timestamp": bson.M{"$not": bson.M{"$type": "date"}}},
			bson.M{"timestamp": dateRange},
		}
	}
	return filter
}

func (s *MongoStore) FetchScanEvents(ctx context.Context, q models.ScanQuery) ([]map[string]interface{}, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := s.scans.Find(ctx, ScanFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find scan events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode scan events: %w", err)
	}
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, map[string]interface{}(d))
	}
	return out, nil
}

// InsertScanEvents เพิ่ม scan ดิบ (ใช้ตอน seed)
func (s *MongoStore) InsertScanEvents(ctx context.Context, events []models.RawScanEvent) error {
	if len(events) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(events))
	for _, e := range events {
		docs = append(docs, e)
	}
	_, err := s.scans.InsertMany(ctx, docs)
	return err
}

// SectionFilter matches a section by its sectionId or its ObjectID hex.
func SectionFilter(schoolID, sectionID string) bson.M {
	or := bson.A{bson.M{"sectionId": sectionID}}
	if oid, err := primitive.ObjectIDFromHex(sectionID); err == nil {
		or = append(or, bson.M{"_id": oid})
	}
	filter := bson.M{"$or": or}
	if schoolID != "" {
		filter["schoolId"] = schoolID
	}
	return filter
}

func (s *MongoStore) GetSection(ctx context.Context, schoolID, sectionID string) (*models.Section, error) {
	var section models.Section
	err := s.sections.FindOne(ctx, SectionFilter(schoolID, sectionID)).Decode(&section)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, roster.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to find section: %w", err)
	}
	return &section, nil
}

func (s *MongoStore) ListSections(ctx context.Context, schoolID string) ([]models.Section, error) {
	cursor, err := s.sections.Find(ctx, schoolFilter(schoolID), options.Find().SetSort(bson.D{{Key: "sectionId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find sections: %w", err)
	}
	defer cursor.Close(ctx)

	sections := make([]models.Section, 0)
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return sections, nil
}

func (s *MongoStore) ListStudents(ctx context.Context, schoolID string) ([]models.Student, error) {
	cursor, err := s.students.Find(ctx, schoolFilter(schoolID), options.Find().SetSort(bson.D{{Key: "studentId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}

func (s *MongoStore) SetSectionRef(ctx context.Context, studentID, sectionRef string) error {
	res, err := s.students.UpdateOne(ctx,
		bson.M{"studentId": studentID},
		bson.M{"$set": bson.M{"sectionRef": sectionRef}},
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("student %s not found", studentID)
	}
	return nil
}

func schoolFilter(schoolID string) bson.M {
	if schoolID == "" {
		return bson.M{}
	}
	return bson.M{"schoolId": schoolID}
}
