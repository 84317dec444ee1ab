// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/observability"
)

// JobHandlerFunc matches the Handle method of every worker package.
type JobHandlerFunc func(client worker.JobClient, job entities.Job)

// WorkerOptions configures one job worker subscription.
type WorkerOptions struct {
	TaskType      string
	MaxJobsActive int
	Timeout       time.Duration
	Concurrency   int
}

type CamundaWorker struct {
	worker   worker.JobWorker
	logger   *zap.Logger
	taskType string
}

// NewWorker opens a job worker whose handler runs inside a span and never
// lets a panic escape into the Zeebe client's goroutine.
func NewWorker(
	client zbc.Client,
	opts WorkerOptions,
	handler JobHandlerFunc,
	obs *observability.Observability,
	logger *zap.Logger,
) *CamundaWorker {
	wrapped := Instrument(opts.TaskType, handler, obs, logger)

	step := client.NewJobWorker().
		JobType(opts.TaskType).
		Handler(wrapped).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout)
	if opts.Concurrency > 0 {
		step = step.Concurrency(opts.Concurrency)
	}
	jobWorker := step.Open()

	logger.Info("worker started",
		zap.String("taskType", opts.TaskType),
		zap.Int("maxJobsActive", opts.MaxJobsActive),
		zap.Duration("timeout", opts.Timeout),
	)

	return &CamundaWorker{
		worker:   jobWorker,
		logger:   logger,
		taskType: opts.TaskType,
	}
}

// Instrument wraps handler with a job span and panic recovery. A recovered
// panic fails the job through the standard error handler.
func Instrument(taskType string, handler JobHandlerFunc, obs *observability.Observability, logger *zap.Logger) worker.JobHandler {
	errHandler := errors.NewErrorHandler(zapErrorLogger{logger})

	return func(client worker.JobClient, job entities.Job) {
		ctx, span := obs.StartSpan(context.Background(), taskType,
			attribute.Int64("job.key", job.GetKey()),
			attribute.Int64("process.instance.key", job.GetProcessInstanceKey()),
		)
		start := time.Now()
		status := "completed"

		defer func() {
			if r := recover(); r != nil {
				status = "panic"
				metrics.WorkerPanicsRecovered.WithLabelValues(taskType).Inc()
				logger.Error("handler panic recovered",
					zap.String("taskType", taskType),
					zap.Int64("jobKey", job.GetKey()),
					zap.Any("panic", r),
				)
				perr := fmt.Errorf("handler panic: %v", r)
				errHandler.HandleJobError(ctx, client, job, perr)
				observability.EndSpan(span, perr)
			} else {
				observability.EndSpan(span, nil)
			}
			obs.RecordJobProcessed(ctx, taskType, status)
			obs.RecordJobDuration(ctx, taskType, time.Since(start), status)
		}()

		handler(client, job)
	}
}

func (w *CamundaWorker) Stop() {
	w.logger.Info("stopping worker", zap.String("taskType", w.taskType))
	w.worker.Close()
	w.worker.AwaitClose()
}

type zapErrorLogger struct {
	logger *zap.Logger
}

func (z zapErrorLogger) Error(msg string, fields map[string]interface{}) {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	z.logger.Error(msg, zapFields...)
}
