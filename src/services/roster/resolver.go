package roster

import (
	"regexp"
	"sort"
	"strings"

	"attendance-sf2/src/models"
)

// UnassignedGrade bucket for sections whose sectionId carries no grade.
const UnassignedGrade = "Unassigned"

var gradePattern = regexp.MustCompile(`G?(\d+)`)

// Grade extracts the grade number from a sectionId ("G7" -> "7"). Empty
// when no digits are present.
func Grade(sectionID string) string {
	m := gradePattern.FindStringSubmatch(sectionID)
	if m == nil {
		return ""
	}
	return m[1]
}

// GradeBucket is Grade with the Unassigned fallback used for grouping.
func GradeBucket(sectionID string) string {
	if g := Grade(sectionID); g != "" {
		return g
	}
	return UnassignedGrade
}

// ExpectedToken is the "{grade} {SECTION NAME}" token embedded in legacy
// student IDs. A missing grade keeps the leading space: stored IDs were
// generated the same way.
func ExpectedToken(s models.Section) string {
	return Grade(s.SectionID) + " " + strings.ToUpper(strings.TrimSpace(s.SectionName))
}

// LegacyToken is the second "_" field of a composite studentId, uppercased.
func LegacyToken(studentID string) string {
	parts := strings.Split(studentID, "_")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToUpper(parts[1])
}

// BelongsTo reports section membership. An explicit SectionRef wins; without
// it the legacy studentId token is compared.
func BelongsTo(st models.Student, s models.Section) bool {
	if st.SectionRef != "" {
		return st.SectionRef == s.SectionID || (!s.ID.IsZero() && st.SectionRef == s.ID.Hex())
	}
	return LegacyToken(st.StudentID) == ExpectedToken(s)
}

// Resolve returns the members of s, keeping input order.
func Resolve(s models.Section, students []models.Student) []models.Student {
	out := make([]models.Student, 0)
	for _, st := range students {
		if BelongsTo(st, s) {
			out = append(out, st)
		}
	}
	return out
}

// GroupByGrade buckets sections by grade; numeric grades ascend and
// Unassigned comes last.
func GroupByGrade(sections []models.Section) []models.SectionGroup {
	index := make(map[string]int)
	groups := make([]models.SectionGroup, 0)
	for _, s := range sections {
		g := GradeBucket(s.SectionID)
		i, ok := index[g]
		if !ok {
			i = len(groups)
			index[g] = i
			groups = append(groups, models.SectionGroup{Grade: g})
		}
		groups[i].Sections = append(groups[i].Sections, s)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return GradeLess(groups[i].Grade, groups[j].Grade)
	})
	return groups
}

// GradeLess orders grade buckets numerically with Unassigned last.
func GradeLess(a, b string) bool {
	if a == UnassignedGrade || b == UnassignedGrade {
		return b == UnassignedGrade && a != UnassignedGrade
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// SectionLabel is the denormalized label stored on scan events.
func SectionLabel(s models.Section) string {
	return strings.TrimSpace(ExpectedToken(s))
}
