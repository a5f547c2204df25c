package roster

import (
	"context"
	"errors"
	"testing"

	"attendance-sf2/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExpectedToken(t *testing.T) {
	s := models.Section{SectionID: "G7", SectionName: "Mabini"}
	assert.Equal(t, "7 MABINI", ExpectedToken(s))

	s = models.Section{SectionID: "10", SectionName: "  sampaguita "}
	assert.Equal(t, "10 SAMPAGUITA", ExpectedToken(s))
}

func TestExpectedTokenWithoutGradeKeepsLeadingSpace(t *testing.T) {
	s := models.Section{SectionID: "SPECIAL", SectionName: "Rizal"}
	assert.Equal(t, "", Grade(s.SectionID))
	assert.Equal(t, UnassignedGrade, GradeBucket(s.SectionID))
	assert.Equal(t, " RIZAL", ExpectedToken(s))
}

func TestBelongsToLegacyToken(t *testing.T) {
	s := models.Section{SectionID: "G7", SectionName: "Mabini"}

	assert.True(t, BelongsTo(models.Student{StudentID: "SCH001_7 MABINI_003"}, s))
	assert.True(t, BelongsTo(models.Student{StudentID: "SCH001_7 mabini_003"}, s))
	assert.False(t, BelongsTo(models.Student{StudentID: "SCH001_7 RIZAL_004"}, s))
	assert.False(t, BelongsTo(models.Student{StudentID: "SCH001"}, s))
	assert.False(t, BelongsTo(models.Student{StudentID: "SCH001_7  MABINI_005"}, s))
}

func TestBelongsToPrefersSectionRef(t *testing.T) {
	id := primitive.NewObjectID()
	s := models.Section{ID: id, SectionID: "G7", SectionName: "Mabini"}

	moved := models.Student{StudentID: "SCH001_7 MABINI_003", SectionRef: "G8"}
	assert.False(t, BelongsTo(moved, s))

	explicit := models.Student{StudentID: "legacy-free", SectionRef: "G7"}
	assert.True(t, BelongsTo(explicit, s))

	byObjectID := models.Student{StudentID: "x", SectionRef: id.Hex()}
	assert.True(t, BelongsTo(byObjectID, s))
}

func TestResolveKeepsOrder(t *testing.T) {
	s := models.Section{SectionID: "G7", SectionName: "Mabini"}
	students := []models.Student{
		{StudentID: "SCH001_7 MABINI_002", Name: "B"},
		{StudentID: "SCH001_7 RIZAL_001", Name: "X"},
		{StudentID: "SCH001_7 MABINI_001", Name: "A"},
	}

	members := Resolve(s, students)

	require.Len(t, members, 2)
	assert.Equal(t, "B", members[0].Name)
	assert.Equal(t, "A", members[1].Name)
}

func TestGroupByGrade(t *testing.T) {
	groups := GroupByGrade([]models.Section{
		{SectionID: "G10", SectionName: "A"},
		{SectionID: "X", SectionName: "B"},
		{SectionID: "G7", SectionName: "C"},
		{SectionID: "G7", SectionName: "D"},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "7", groups[0].Grade)
	assert.Len(t, groups[0].Sections, 2)
	assert.Equal(t, "10", groups[1].Grade)
	assert.Equal(t, UnassignedGrade, groups[2].Grade)
}

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "7 MABINI", SectionLabel(models.Section{SectionID: "G7", SectionName: "mabini"}))
}

type memStore struct {
	sections []models.Section
	students []models.Student
	refs     map[string]string
	failOn   string
}

func (m *memStore) GetSection(_ context.Context, _, sectionID string) (*models.Section, error) {
	for _, s := range m.sections {
		if s.SectionID == sectionID {
			s := s
			return &s, nil
		}
	}
	return nil, ErrSectionNotFound
}

func (m *memStore) ListSections(context.Context, string) ([]models.Section, error) {
	return m.sections, nil
}

func (m *memStore) ListStudents(context.Context, string) ([]models.Student, error) {
	return m.students, nil
}

func (m *memStore) SetSectionRef(_ context.Context, studentID, ref string) error {
	if studentID == m.failOn {
		return errors.New("write failed")
	}
	if m.refs == nil {
		m.refs = map[string]string{}
	}
	m.refs[studentID] = ref
	return nil
}

func TestMembers(t *testing.T) {
	store := &memStore{
		sections: []models.Section{{SectionID: "G7", SectionName: "Mabini"}},
		students: []models.Student{
			{StudentID: "SCH001_7 MABINI_001"},
			{StudentID: "SCH001_7 RIZAL_001"},
		},
	}

	section, members, err := Members(context.Background(), store, "SCH001", "G7")
	require.NoError(t, err)
	assert.Equal(t, "Mabini", section.SectionName)
	assert.Len(t, members, 1)

	_, _, err = Members(context.Background(), store, "SCH001", "G9")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestMigrateSectionRefs(t *testing.T) {
	store := &memStore{
		sections: []models.Section{
			{SectionID: "G7", SectionName: "Mabini"},
			{SectionID: "G7-R", SectionName: "Rizal"},
		},
		students: []models.Student{
			{StudentID: "SCH001_7 MABINI_001"},
			{StudentID: "SCH001_7 RIZAL_001"},
			{StudentID: "SCH001_7 RIZAL_002", SectionRef: "G7-R"},
			{StudentID: "SCH001_8 ACACIA_001"},
		},
	}

	res, err := MigrateSectionRefs(context.Background(), store, store, "SCH001")

	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []string{"SCH001_8 ACACIA_001"}, res.Unmatched)
	assert.Equal(t, "G7", store.refs["SCH001_7 MABINI_001"])
	assert.Equal(t, "G7-R", store.refs["SCH001_7 RIZAL_001"])
}

func TestMigrateSectionRefsStopsOnWriteError(t *testing.T) {
	store := &memStore{
		sections: []models.Section{{SectionID: "G7", SectionName: "Mabini"}},
		students: []models.Student{{StudentID: "SCH001_7 MABINI_001"}},
		failOn:   "SCH001_7 MABINI_001",
	}

	_, err := MigrateSectionRefs(context.Background(), store, store, "SCH001")
	assert.Error(t, err)
}
