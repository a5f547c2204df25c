package jobs

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const (
	TypeGenerateSF2        = "sf2:generate"
	TypeMigrateSectionRefs = "roster:migrate-section-refs"
)

type GenerateSF2Payload struct {
	JobID string `json:"jobId"`
}

func NewGenerateSF2Task(jobID string) (*asynq.Task, error) {
	payload, err := json.Marshal(GenerateSF2Payload{JobID: strings.TrimSpace(jobID)})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateSF2, payload), nil
}

func GenerateSF2TaskID(jobID string) string {
	return "sf2-generate-" + strings.TrimSpace(jobID)
}

type MigrateSectionRefsPayload struct {
	SchoolID string `json:"schoolId"`
}

func NewMigrateSectionRefsTask(schoolID string) (*asynq.Task, error) {
	payload, err := json.Marshal(MigrateSectionRefsPayload{SchoolID: strings.TrimSpace(schoolID)})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMigrateSectionRefs, payload), nil
}
