package exports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/cache"
	"attendance-sf2/src/services/roster"
	"attendance-sf2/src/services/sf2"
	"attendance-sf2/src/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrQueueUnavailable = errors.New("export queue not available")

// Dispatcher hands a job id to the background worker.
type Dispatcher interface {
	DispatchExport(ctx context.Context, jobID string) error
}

// Service renders SF2 workbooks from the store, inline or through the queue.
type Service struct {
	builder  *Builder
	renderer *sf2.Renderer
	jobs     *cache.JobStore
	dispatch Dispatcher
	log      *zap.Logger
}

func NewService(builder *Builder, renderer *sf2.Renderer, jobs *cache.JobStore, dispatch Dispatcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{builder: builder, renderer: renderer, jobs: jobs, dispatch: dispatch, log: log}
}

// Generate builds and renders one section-month, returning the file bytes
// and download name.
func (s *Service) Generate(ctx context.Context, req models.ExportJobRequest) ([]byte, string, error) {
	sreq, err := s.builder.Build(ctx, req)
	if err != nil {
		return nil, "", err
	}
	data, err := s.renderer.Render(ctx, sreq)
	if err != nil {
		return nil, "", err
	}
	return data, sf2.Filename(sreq.Section, sreq.Month, sreq.SchoolYear), nil
}

// Submit records a pending job and queues it.
func (s *Service) Submit(ctx context.Context, req models.ExportJobRequest) (models.ExportJob, error) {
	if s.dispatch == nil || !s.jobs.Available() {
		return models.ExportJob{}, ErrQueueUnavailable
	}

	now := time.Now().UTC()
	job := models.ExportJob{
		ID:        uuid.NewString(),
		Status:    models.ExportPending,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return job, err
	}
	if err := s.dispatch.DispatchExport(ctx, job.ID); err != nil {
		s.fail(ctx, job.ID, err)
		return job, fmt.Errorf("enqueue export: %w", err)
	}

	s.log.Info("export job queued", zap.String("job", job.ID), zap.String("section", req.SectionID))
	return job, nil
}

// Run executes a queued job. Request errors mark the job failed and return
// nil so the queue does not retry them.
func (s *Service) Run(ctx context.Context, jobID string) error {
	job, err := s.jobs.Update(ctx, jobID, func(j *models.ExportJob) {
		j.Status = models.ExportRunning
		j.Error = ""
	})
	if err != nil {
		if errors.Is(err, cache.ErrJobNotFound) {
			s.log.Warn("export job expired before it ran", zap.String("job", jobID))
			return nil
		}
		return err
	}

	data, filename, err := s.Generate(ctx, job.Request)
	if err != nil {
		s.fail(ctx, jobID, err)
		if permanent(err) {
			return nil
		}
		return err
	}

	if err := s.jobs.SaveArtifact(ctx, jobID, data); err != nil {
		s.fail(ctx, jobID, err)
		return err
	}
	if _, err := s.jobs.Update(ctx, jobID, func(j *models.ExportJob) {
		j.Status = models.ExportCompleted
		j.Filename = filename
	}); err != nil {
		return err
	}

	utils.ExportJobs.WithLabelValues(models.ExportCompleted).Inc()
	s.log.Info("export job completed", zap.String("job", jobID), zap.String("file", filename), zap.Int("bytes", len(data)))
	return nil
}

func (s *Service) fail(ctx context.Context, jobID string, cause error) {
	utils.ExportJobs.WithLabelValues(models.ExportFailed).Inc()
	s.log.Error("export job failed", zap.String("job", jobID), zap.Error(cause))
	if _, err := s.jobs.Update(ctx, jobID, func(j *models.ExportJob) {
		j.Status = models.ExportFailed
		j.Error = cause.Error()
	}); err != nil {
		s.log.Warn("could not record export failure", zap.String("job", jobID), zap.Error(err))
	}
}

// Status returns the job record.
func (s *Service) Status(ctx context.Context, jobID string) (models.ExportJob, error) {
	return s.jobs.Get(ctx, jobID)
}

// Download returns the rendered file of a completed job.
func (s *Service) Download(ctx context.Context, jobID string) ([]byte, string, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	if job.Status != models.ExportCompleted {
		return nil, "", fmt.Errorf("%w: job is %s", cache.ErrArtifactNotFound, job.Status)
	}
	data, err := s.jobs.Artifact(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	return data, job.Filename, nil
}

// permanent errors fail the job without a queue retry.
func permanent(err error) bool {
	return sf2.IsClientError(err) ||
		errors.Is(err, roster.ErrSectionNotFound) ||
		errors.Is(err, sf2.ErrTemplateUnavailable) ||
		errors.Is(err, sf2.ErrSheetMissing)
}
