package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"attendance-sf2/src/models"

	"github.com/redis/go-redis/v9"
)

var (
	ErrJobNotFound      = errors.New("export job not found")
	ErrArtifactNotFound = errors.New("export artifact not found")
	ErrRedisUnavailable = errors.New("redis not available")
)

// JobStore holds async export job records and their rendered files. Both
// expire after ttl.
type JobStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewJobStore(rdb *redis.Client, ttl time.Duration) *JobStore {
	return &JobStore{rdb: rdb, ttl: ttl}
}

func jobKey(id string) string      { return "export:job:" + id }
func artifactKey(id string) string { return "export:file:" + id }

func (s *JobStore) Available() bool { return s != nil && s.rdb != nil }

func (s *JobStore) Save(ctx context.Context, job models.ExportJob) error {
	if !s.Available() {
		return ErrRedisUnavailable
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, jobKey(job.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save export job: %w", err)
	}
	return nil
}

func (s *JobStore) Get(ctx context.Context, id string) (models.ExportJob, error) {
	var job models.ExportJob
	if !s.Available() {
		return job, ErrRedisUnavailable
	}
	raw, err := s.rdb.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return job, ErrJobNotFound
		}
		return job, fmt.Errorf("failed to load export job: %w", err)
	}
	if err := json.Unmarshal(raw, &job); err != nil {
		return job, fmt.Errorf("failed to decode export job: %w", err)
	}
	return job, nil
}

// Update loads the job, applies fn and saves it back with a fresh UpdatedAt.
func (s *JobStore) Update(ctx context.Context, id string, fn func(*models.ExportJob)) (models.ExportJob, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return job, err
	}
	fn(&job)
	job.UpdatedAt = time.Now().UTC()
	return job, s.Save(ctx, job)
}

func (s *JobStore) SaveArtifact(ctx context.Context, id string, data []byte) error {
	if !s.Available() {
		return ErrRedisUnavailable
	}
	if err := s.rdb.Set(ctx, artifactKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save export artifact: %w", err)
	}
	return nil
}

func (s *JobStore) Artifact(ctx context.Context, id string) ([]byte, error) {
	if !s.Available() {
		return nil, ErrRedisUnavailable
	}
	data, err := s.rdb.Get(ctx, artifactKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to load export artifact: %w", err)
	}
	return data, nil
}
