// internal/workers/opportunity/rank-occupations/handler.go
package rankoccupations

import (
	"context"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/validation"
	"ai-readiness-workers/internal/repository"
	"ai-readiness-workers/internal/scoring"
)

const TaskType = "rank-occupations"

type Handler struct {
	config       *Config
	engine       *scoring.Engine
	store        repository.Store
	validator    *validation.SchemaValidator
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, store repository.Store, validator *validation.SchemaValidator, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       scoring.NewEngine(),
		store:        store,
		validator:    validator,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Limit < 0 {
		return nil, errors.NewInvalidInputError("limit must not be negative")
	}

	params, err := validation.ResolveParameters(h.config.Parameters, input.Parameters)
	if err != nil {
		return nil, err
	}

	candidates, err := repository.LoadCandidates(ctx, h.store, input.OccupationNames)
	if err != nil {
		return nil, err
	}

	validation.CheckEducationLevel(h.logger, input.Profile)
	ranked := h.engine.RankOccupations(input.Profile, input.Skills, candidates, params)

	limit := input.Limit
	if limit == 0 {
		limit = h.config.DefaultLimit
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	rankings := make([]Ranking, 0, len(ranked))
	for i, r := range ranked {
		rankings = append(rankings, Ranking{
			Rank:              i + 1,
			OccupationName:    r.Occupation,
			AIR:               r.AIR,
			VR:                r.VR,
			HR:                r.HR,
			SynergyPercentage: r.SynergyPct,
			SkillsMatch:       r.Synergy.SkillsMatch,
		})
		metrics.ScoreValue.WithLabelValues("air").Observe(r.AIR)
	}

	h.logger.Info("occupations ranked", map[string]interface{}{
		"scored":   len(candidates),
		"returned": len(rankings),
	})

	return &Output{
		ResultID:    uuid.New().String(),
		UserID:      input.Profile.UserID,
		Rankings:    rankings,
		TotalScored: len(candidates),
		Parameters:  params,
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
