package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	QueueExports = "exports"
	QueueDefault = "default"
)

// Client enqueues background tasks.
type Client struct {
	asynq *asynq.Client
}

func NewClient(c *asynq.Client) *Client {
	if c == nil {
		return nil
	}
	return &Client{asynq: c}
}

// DispatchExport queues an SF2 export job.
func (c *Client) DispatchExport(ctx context.Context, jobID string) error {
	task, err := NewGenerateSF2Task(jobID)
	if err != nil {
		return err
	}
	_, err = c.asynq.EnqueueContext(ctx, task,
		asynq.TaskID(GenerateSF2TaskID(jobID)),
		asynq.Queue(QueueExports),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	return err
}

// EnqueueMigration queues a section-ref backfill and returns the task id.
func (c *Client) EnqueueMigration(ctx context.Context, schoolID string, delay time.Duration) (string, error) {
	task, err := NewMigrateSectionRefsTask(schoolID)
	if err != nil {
		return "", err
	}
	info, err := c.asynq.EnqueueContext(ctx, task,
		asynq.TaskID(fmt.Sprintf("migrate-section-refs-%s-%s", schoolID, time.Now().Format("20060102150405"))),
		asynq.ProcessIn(delay),
		asynq.MaxRetry(1),
	)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

// Handlers the worker binds.
type Handlers struct {
	Exports ExportRunner
	Roster  RosterStore
	Cache   CacheInvalidator
}

// NewMux ผูก handler กับ type ที่ใช้ใน task
func NewMux(h Handlers, log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGenerateSF2, HandleGenerateSF2Task(h.Exports, log))
	mux.HandleFunc(TypeMigrateSectionRefs, HandleMigrateSectionRefsTask(h.Roster, h.Cache, log))
	return mux
}

// NewServer builds the worker server. Exports get most of the slots.
func NewServer(redisURI string, concurrency int, log *zap.Logger) *asynq.Server {
	if concurrency <= 0 {
		concurrency = 1
	}
	return asynq.NewServer(asynq.RedisClientOpt{Addr: redisURI}, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueExports: 6,
			QueueDefault: 3,
		},
		Logger:          log.Sugar(),
		ShutdownTimeout: 30 * time.Second,
	})
}
