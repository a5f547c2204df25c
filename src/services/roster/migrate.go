package roster

import (
	"context"
	"fmt"

	"attendance-sf2/src/models"
)

// MigrationResult counts of a section-ref backfill run.
type MigrationResult struct {
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Unmatched []string `json:"unmatched"`
}

// MigrateSectionRefs backfills Student.SectionRef from the legacy studentId
// token. Students that already carry a ref are skipped; students matching no
// section are reported, not failed.
func MigrateSectionRefs(ctx context.Context, src Source, w Writer, schoolID string) (MigrationResult, error) {
	var res MigrationResult

	sections, err := src.ListSections(ctx, schoolID)
	if err != nil {
		return res, fmt.Errorf("list sections: %w", err)
	}
	students, err := src.ListStudents(ctx, schoolID)
	if err != nil {
		return res, fmt.Errorf("list students: %w", err)
	}

	byToken := make(map[string]models.Section, len(sections))
	for _, s := range sections {
		byToken[ExpectedToken(s)] = s
	}

	for _, st := range students {
		if st.SectionRef != "" {
			res.Skipped++
			continue
		}
		s, ok := byToken[LegacyToken(st.StudentID)]
		if !ok {
			res.Unmatched = append(res.Unmatched, st.StudentID)
			continue
		}
		if err := w.SetSectionRef(ctx, st.StudentID, s.SectionID); err != nil {
			return res, fmt.Errorf("update %s: %w", st.StudentID, err)
		}
		res.Updated++
	}
	return res, nil
}
