package database

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/roster"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Firestore caps "in" filters at 30 values.
const firestoreInLimit = 30

// FirestoreStore serves the same data as MongoStore from Firestore
// collections with identical names.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) scanQuery(q models.ScanQuery) firestore.Query {
	query := s.client.Collection(ScanEventsCollectionName).Query
	if q.SchoolID != "" {
		query = query.Where("schoolId", "==", q.SchoolID)
	}
	if q.SectionLabel != "" {
		query = query.Where("section", "==", q.SectionLabel)
	}
	if n := len(q.StudentIDs); n > 0 && n <= firestoreInLimit {
		query = query.Where("studentId", "in", q.StudentIDs)
	}
	return query
}

// FetchScanEvents returns raw documents; timestamp range and ordering are
// left to the caller since legacy documents mix timestamp types.
func (s *FirestoreStore) FetchScanEvents(ctx context.Context, q models.ScanQuery) ([]map[string]interface{}, error) {
	var wanted map[string]bool
	if len(q.StudentIDs) > firestoreInLimit {
		wanted = make(map[string]bool, len(q.StudentIDs))
		for _, id := range q.StudentIDs {
			wanted[id] = true
		}
	}

	iter := s.scanQuery(q).Documents(ctx)
	defer iter.Stop()

	out := make([]map[string]interface{}, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read scan events: %w", err)
		}
		data := doc.Data()
		if wanted != nil {
			if id, _ := data["studentId"].(string); !wanted[id] {
				continue
			}
		}
		out = append(out, data)
	}
	return out, nil
}

func (s *FirestoreStore) GetSection(ctx context.Context, schoolID, sectionID string) (*models.Section, error) {
	sections, err := s.ListSections(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		if sec.SectionID == sectionID {
			sec := sec
			return &sec, nil
		}
	}
	return nil, roster.ErrSectionNotFound
}

func (s *FirestoreStore) ListSections(ctx context.Context, schoolID string) ([]models.Section, error) {
	query := s.client.Collection(SectionsCollectionName).Query
	if schoolID != "" {
		query = query.Where("schoolId", "==", schoolID)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	sections := make([]models.Section, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read sections: %w", err)
		}
		var sec models.Section
		if err := doc.DataTo(&sec); err != nil {
			return nil, fmt.Errorf("failed to decode section %s: %w", doc.Ref.ID, err)
		}
		if sec.SectionID == "" {
			sec.SectionID = doc.Ref.ID
		}
		sections = append(sections, sec)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].SectionID < sections[j].SectionID })
	return sections, nil
}

func (s *FirestoreStore) ListStudents(ctx context.Context, schoolID string) ([]models.Student, error) {
	query := s.client.Collection(StudentsCollectionName).Query
	if schoolID != "" {
		query = query.Where("schoolId", "==", schoolID)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	students := make([]models.Student, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read students: %w", err)
		}
		var st models.Student
		if err := doc.DataTo(&st); err != nil {
			return nil, fmt.Errorf("failed to decode student %s: %w", doc.Ref.ID, err)
		}
		if st.StudentID == "" {
			st.StudentID = doc.Ref.ID
		}
		students = append(students, st)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].StudentID < students[j].StudentID })
	return students, nil
}

func (s *FirestoreStore) SetSectionRef(ctx context.Context, studentID, sectionRef string) error {
	iter := s.client.Collection(StudentsCollectionName).Where("studentId", "==", studentID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		// older documents are keyed by studentId with no field copy
		ref := s.client.Collection(StudentsCollectionName).Doc(studentID)
		_, err = ref.Update(ctx, []firestore.Update{{Path: "sectionRef", Value: sectionRef}})
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to find student: %w", err)
	}
	_, err = doc.Ref.Update(ctx, []firestore.Update{{Path: "sectionRef", Value: sectionRef}})
	return err
}

// InsertScanEvents เพิ่ม scan ดิบ (ใช้ตอน seed)
func (s *FirestoreStore) InsertScanEvents(ctx context.Context, events []models.RawScanEvent) error {
	col := s.client.Collection(ScanEventsCollectionName)
	for _, e := range events {
		if _, _, err := col.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
