// internal/workers/communication/send-score-report/handler.go
package sendscorereport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/common/validation"
)

const TaskType = "send-score-report"

// Sender delivers email and SMS. *aws.Notifier satisfies it.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error)
	SendSMS(ctx context.Context, phone, message string) (string, error)
}

type Handler struct {
	config       *Config
	sender       Sender
	validator    *validation.SchemaValidator
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, sender Sender, validator *validation.SchemaValidator, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		sender:       sender,
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

// execute sends the email first. An email failure fails the job so it can be
// retried; an SMS failure after a delivered email downgrades to partial.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.RecipientEmail) == "" {
		return nil, errors.NewInvalidInputError("recipientEmail is required")
	}
	wantSMS := h.config.SMSEnabled && input.SendSMS
	if wantSMS && !validation.ValidatePhone(input.RecipientPhone) {
		return nil, errors.NewInvalidInputError("recipientPhone must be an E.164 number when sendSms is set")
	}

	output := &Output{
		NotificationID: uuid.New().String(),
		Status:         StatusDisabled,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}
	if !h.config.EmailEnabled && !wantSMS {
		h.logger.Info("notifications disabled, report not sent", map[string]interface{}{
			"userId": input.UserID,
		})
		return output, nil
	}

	rep, err := renderReport(input)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	attempted, delivered := 0, 0

	if h.config.EmailEnabled {
		attempted++
		msgID, err := h.sender.SendEmail(ctx, input.RecipientEmail, rep.Subject, rep.Text, rep.HTML)
		if err != nil {
			metrics.NotificationsSent.WithLabelValues("email", "failed").Inc()
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		metrics.NotificationsSent.WithLabelValues("email", "sent").Inc()
		h.logger.Info("score report emailed", map[string]interface{}{
			"messageId": msgID,
			"userId":    input.UserID,
		})
		output.EmailSent = true
		delivered++
	}

	if wantSMS {
		attempted++
		msgID, err := h.sender.SendSMS(ctx, input.RecipientPhone, rep.SMS)
		if err != nil {
			metrics.NotificationsSent.WithLabelValues("sms", "failed").Inc()
			if delivered == 0 {
				return nil, errors.NewNotificationSendFailedError("sms", err)
			}
			h.logger.Warn("sms send failed after email delivered", map[string]interface{}{
				"error":  err.Error(),
				"userId": input.UserID,
			})
		} else {
			metrics.NotificationsSent.WithLabelValues("sms", "sent").Inc()
			h.logger.Info("score report texted", map[string]interface{}{
				"messageId": msgID,
				"userId":    input.UserID,
			})
			output.SMSSent = true
			delivered++
		}
	}

	if delivered == attempted {
		output.Status = StatusSent
	} else {
		output.Status = StatusPartial
	}
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
