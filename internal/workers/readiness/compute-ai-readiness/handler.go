// internal/workers/readiness/compute-ai-readiness/handler.go
package computeaireadiness

import (
	"context"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/observability"
	"ai-readiness-workers/internal/common/validation"
	"ai-readiness-workers/internal/repository"
	"ai-readiness-workers/internal/scoring"
)

const TaskType = "compute-ai-readiness"

type Handler struct {
	config       *Config
	engine       *scoring.Engine
	store        repository.Store
	validator    *validation.SchemaValidator
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler builds the handler. obs may be nil.
func NewHandler(config *Config, store repository.Store, validator *validation.SchemaValidator, obs *observability.Observability, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       scoring.NewEngine(),
		store:        store,
		validator:    validator,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(l),
		logger:       l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := h.validator.DecodeJobVariables(TaskType, job.Variables, &input); err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	if err := h.completeJob(ctx, client, job, output); err != nil {
		h.fail(ctx, client, job, errors.NewInternalError(err))
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (out *Output, err error) {
	ctx, span := h.obs.StartSpan(ctx, "score",
		attribute.String("occupation", input.OccupationName),
	)
	defer func() { observability.EndSpan(span, err) }()

	params, err := validation.ResolveParameters(h.config.Parameters, input.Parameters)
	if err != nil {
		return nil, err
	}

	candidate, err := repository.LoadCandidate(ctx, h.store, input.OccupationName)
	if err != nil {
		return nil, err
	}

	result := h.engine.Score(scoring.ScoreInput{
		Profile:        input.Profile,
		Occupation:     candidate.Occupation,
		Skills:         input.Skills,
		RequiredSkills: candidate.RequiredSkills,
		Parameters:     params,
	})

	validation.CheckEducationLevel(h.logger, input.Profile)
	metrics.ObserveScore(result.VR, result.HR, result.SynergyPct, result.AIR)
	h.obs.RecordScore(ctx, "vr", result.VR)
	h.obs.RecordScore(ctx, "hr", result.HR)
	h.obs.RecordScore(ctx, "air", result.AIR)
	span.SetAttributes(attribute.Float64("air", result.AIR))

	h.logger.Info("ai readiness computed", map[string]interface{}{
		"occupation": result.Occupation,
		"aiR":        result.AIR,
		"vr":         result.VR,
		"hr":         result.HR,
	})

	return &Output{
		ResultID:          uuid.New().String(),
		UserID:            input.Profile.UserID,
		OccupationName:    result.Occupation,
		AIR:               result.AIR,
		VR:                result.VR,
		HR:                result.HR,
		SynergyPercentage: result.SynergyPct,
		Score:             result,
	}, nil
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

// completeJob returns encoding and gateway errors so the caller can fail the
// job instead of counting it as completed.
func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("encode job variables: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}
	return nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
