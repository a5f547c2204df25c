package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"attendance-sf2/src/services/roster"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ExportRunner executes a stored export job.
type ExportRunner interface {
	Run(ctx context.Context, jobID string) error
}

// RosterStore is the read/write roster access the migration needs.
type RosterStore interface {
	roster.Source
	roster.Writer
}

// CacheInvalidator drops cached SF2 matrices after roster changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, schoolID, sectionID string) (int, error)
}

// HandleGenerateSF2Task renders the queued export.
func HandleGenerateSF2Task(runner ExportRunner, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload GenerateSF2Payload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Error("❌ Payload decode error", zap.String("type", t.Type()), zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if payload.JobID == "" {
			return fmt.Errorf("%w: empty job id", asynq.SkipRetry)
		}

		log.Info("🎯 Start sf2 export", zap.String("job", payload.JobID))
		return runner.Run(ctx, payload.JobID)
	}
}

// HandleMigrateSectionRefsTask backfills Student.SectionRef for one school.
// cache may be nil.
func HandleMigrateSectionRefsTask(store RosterStore, cache CacheInvalidator, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload MigrateSectionRefsPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Error("❌ Payload decode error", zap.String("type", t.Type()), zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		res, err := roster.MigrateSectionRefs(ctx, store, store, payload.SchoolID)
		if err != nil {
			log.Error("❌ Section ref migration failed", zap.String("school", payload.SchoolID), zap.Error(err))
			return err
		}

		log.Info("✅ Section refs migrated",
			zap.String("school", payload.SchoolID),
			zap.Int("updated", res.Updated),
			zap.Int("skipped", res.Skipped),
			zap.Int("unmatched", len(res.Unmatched)),
		)
		if len(res.Unmatched) > 0 {
			log.Warn("⚠️ Students without a matching section", zap.Strings("studentIds", res.Unmatched))
		}
		if cache != nil && res.Updated > 0 {
			if _, err := cache.Invalidate(ctx, payload.SchoolID, ""); err != nil {
				log.Warn("⚠️ Could not invalidate report cache", zap.String("school", payload.SchoolID), zap.Error(err))
			}
		}
		return nil
	}
}
