package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"attendance-sf2/src/jobs"
	"attendance-sf2/src/services/roster"
	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MigrationQueue enqueues the section-ref backfill.
type MigrationQueue interface {
	EnqueueMigration(ctx context.Context, schoolID string, delay time.Duration) (string, error)
}

type AdminJobsController struct {
	Queue  MigrationQueue
	Roster jobs.RosterStore
	Cache  jobs.CacheInvalidator
	Log    *zap.Logger
}

func NewAdminJobsController(q MigrationQueue, rs jobs.RosterStore, c jobs.CacheInvalidator, log *zap.Logger) *AdminJobsController {
	return &AdminJobsController{Queue: q, Roster: rs, Cache: c, Log: logger(log)}
}

// MigrateSectionRefs godoc
// @Summary      Backfill student section references
// @Description  Enqueue the migration after delaySec seconds, or run it in-process with sync=true (no Redis required)
// @Tags         admin
// @Produce      json
// @Param        schoolId  query  string  true   "School ID"
// @Param        delaySec  query  int     false  "Delay in seconds"  default(0)
// @Param        sync      query  bool    false  "Run now instead of enqueueing"
// @Success      200  {object}  roster.MigrationResult
// @Success      202  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /admin/jobs/migrate-section-refs [post]
func (h *AdminJobsController) MigrateSectionRefs(c *fiber.Ctx) error {
	schoolID := strings.TrimSpace(c.Query("schoolId"))
	if schoolID == "" {
		return utils.HandleError(c, http.StatusBadRequest, "schoolId is required")
	}

	if c.QueryBool("sync") {
		res, err := roster.MigrateSectionRefs(c.UserContext(), h.Roster, h.Roster, schoolID)
		if err != nil {
			return respondError(c, h.Log, err)
		}
		if h.Cache != nil && res.Updated > 0 {
			if _, err := h.Cache.Invalidate(c.UserContext(), schoolID, ""); err != nil {
				h.Log.Warn("⚠️ Could not invalidate report cache", zap.String("school", schoolID), zap.Error(err))
			}
		}
		return c.Status(http.StatusOK).JSON(res)
	}

	if h.Queue == nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "asynq client not initialized")
	}

	delaySec := c.QueryInt("delaySec")
	if delaySec < 0 {
		delaySec = 0
	}
	id, err := h.Queue.EnqueueMigration(c.UserContext(), schoolID, time.Duration(delaySec)*time.Second)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"status": "enqueued", "taskId": id, "delaySec": delaySec})
}
