// internal/workers/pathway/simulate-pathway-impact/handler.go
package simulatepathwayimpact

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

const TaskType = "simulate-pathway-impact"

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
	if err := checkFraction("completion", input.Completion); err != nil {
		return nil, err
	}
	if err := checkFraction("mastery", input.Mastery); err != nil {
		return nil, err
	}

	params, err := validation.ResolveParameters(h.config.Parameters, input.Parameters)
	if err != nil {
		return nil, err
	}

	pathway, err := h.store.GetPathway(ctx, input.PathwayID)
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
	sim := h.engine.SimulatePathway(scoring.SimulationInput{
		Baseline:   baseline,
		Pathway:    pathway,
		Completion: input.Completion,
		Mastery:    input.Mastery,
	})

	metrics.PathwaySimulations.WithLabelValues(strconv.Itoa(pathway.ID)).Inc()
	h.logger.Info("pathway simulated", map[string]interface{}{
		"pathwayId":   pathway.ID,
		"occupation":  baseline.Occupation,
		"baselineAiR": sim.Baseline.AIR,
		"deltaAiR":    sim.Delta.AIR,
	})

	return &Output{
		ResultID:       uuid.New().String(),
		UserID:         input.Profile.UserID,
		OccupationName: baseline.Occupation,
		Simulation:     sim,
	}, nil
}

func checkFraction(field string, v float64) error {
	if v < 0 || v > 1 {
		return errors.NewInvalidInputError(fmt.Sprintf("%s must be within [0,1], got %v", field, v))
	}
	return nil
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
