// internal/workers/pathway/compare-pathways/handler.go
package comparepathways

import (
	"context"
	"fmt"
	"strconv"
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

const TaskType = "compare-pathways"

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
	if input.Completion < 0 || input.Completion > 1 || input.Mastery < 0 || input.Mastery > 1 {
		return nil, errors.NewInvalidInputError(fmt.Sprintf(
			"completion and mastery must be within [0,1], got %v and %v", input.Completion, input.Mastery))
	}

	params, err := validation.ResolveParameters(h.config.Parameters, input.Parameters)
	if err != nil {
		return nil, err
	}

	pathways, err := repository.LoadPathways(ctx, h.store, input.PathwayIDs)
	if err != nil {
		return nil, err
	}
	candidate, err := repository.LoadCandidate(ctx, h.store, input.OccupationName)
	if err != nil {
		return nil, err
	}

	validation.CheckEducationLevel(h.logger, input.Profile)
	baseline := h.engine.Score(scoring.ScoreInput{
		Profile:        input.Profile,
		Occupation:     candidate.Occupation,
		Skills:         input.Skills,
		RequiredSkills: candidate.RequiredSkills,
		Parameters:     params,
	})
	results := h.engine.ComparePathways(baseline, pathways, input.Completion, input.Mastery)

	output := &Output{
		ResultID:       uuid.New().String(),
		UserID:         input.Profile.UserID,
		OccupationName: baseline.Occupation,
		Baseline:       scoring.ScoreSnapshot{VR: baseline.VR, SynergyPct: baseline.SynergyPct, AIR: baseline.AIR},
		Results:        results,
	}
	for _, r := range results {
		metrics.PathwaySimulations.WithLabelValues(strconv.Itoa(r.Pathway.ID)).Inc()
	}
	if len(results) > 0 {
		output.BestPathwayID = results[0].Pathway.ID
		output.BestPathway = results[0].Pathway.Name
	}

	h.logger.Info("pathways compared", map[string]interface{}{
		"occupation":    baseline.Occupation,
		"compared":      len(results),
		"bestPathwayId": output.BestPathwayID,
	})
	return output, nil
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
