// internal/workers/communication/send-score-report/handler_test.go
package sendscorereport

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ai-readiness-workers/internal/common/aws"
	"ai-readiness-workers/internal/common/errors"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/validation"
)

// ==========================
// Mock Implementations
// ==========================

type MockSESService struct {
	mock.Mock
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

type MockSNSService struct {
	mock.Mock
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sns.PublishOutput), args.Error(1)
}

func okSES(captured **ses.SendEmailInput) *MockSESService {
	m := &MockSESService{}
	m.On("SendEmail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if captured != nil {
				*captured = args.Get(1).(*ses.SendEmailInput)
			}
		}).
		Return(&ses.SendEmailOutput{MessageId: awssdk.String("ses-1")}, nil)
	return m
}

func okSNS(captured **sns.PublishInput) *MockSNSService {
	m := &MockSNSService{}
	m.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if captured != nil {
				*captured = args.Get(1).(*sns.PublishInput)
			}
		}).
		Return(&sns.PublishOutput{MessageId: awssdk.String("sns-1")}, nil)
	return m
}

func failingSES() *MockSESService {
	m := &MockSESService{}
	m.On("SendEmail", mock.Anything, mock.Anything).
		Return(nil, stderrors.New("MessageRejected: Email address is not verified"))
	return m
}

func failingSNS() *MockSNSService {
	m := &MockSNSService{}
	m.On("Publish", mock.Anything, mock.Anything).Return(nil, stderrors.New("throttled"))
	return m
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		EmailEnabled: true,
		SMSEnabled:   true,
	}
}

func createTestInput() *Input {
	return &Input{
		UserID:            "1",
		RecipientEmail:    "learner@example.com",
		RecipientPhone:    "+14155550123",
		SendSMS:           true,
		OccupationName:    "Data Analyst with AI Skills",
		AIR:               107.729382968,
		VR:                102.565,
		HR:                79.638375065,
		SynergyPercentage: 95.566886281,
		BestPathway:       "AI-Assisted Data Analysis",
	}
}

func createTestHandler(t *testing.T, cfg *Config, sesSvc aws.SESService, snsSvc aws.SNSService) *Handler {
	t.Helper()
	v, err := validation.NewDefaultValidator()
	require.NoError(t, err)
	notifier := aws.NewNotifier(sesSvc, snsSvc, "scores@example.com")
	return NewHandler(cfg, notifier, v, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_EmailAndSMS(t *testing.T) {
	var email *ses.SendEmailInput
	var sms *sns.PublishInput
	h := createTestHandler(t, createTestConfig(), okSES(&email), okSNS(&sms))

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	assert.Equal(t, StatusSent, output.Status)
	assert.True(t, output.EmailSent)
	assert.True(t, output.SMSSent)
	_, err = uuid.Parse(output.NotificationID)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, output.SentAt)
	assert.NoError(t, err)

	require.NotNil(t, email)
	assert.Equal(t, []string{"learner@example.com"}, email.Destination.ToAddresses)
	assert.Equal(t, "scores@example.com", awssdk.ToString(email.Source))
	assert.Equal(t, "Your AI-Readiness score for Data Analyst with AI Skills", awssdk.ToString(email.Message.Subject.Data))
	assert.Contains(t, awssdk.ToString(email.Message.Body.Text.Data), "is 107.7")
	assert.Contains(t, awssdk.ToString(email.Message.Body.Text.Data), "Recommended next step: AI-Assisted Data Analysis")
	assert.Contains(t, awssdk.ToString(email.Message.Body.Html.Data), "<strong>AI-Assisted Data Analysis</strong>")

	require.NotNil(t, sms)
	assert.Equal(t, "+14155550123", awssdk.ToString(sms.PhoneNumber))
	assert.Equal(t, "AI-R for Data Analyst with AI Skills: 107.7 (V^R 102.6, H^R 79.6)", awssdk.ToString(sms.Message))
}

func TestHandler_Execute_SMSNotRequested(t *testing.T) {
	snsSvc := okSNS(nil)
	h := createTestHandler(t, createTestConfig(), okSES(nil), snsSvc)
	in := createTestInput()
	in.SendSMS = false

	output, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.False(t, output.SMSSent)
	snsSvc.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandler_Execute_AllChannelsDisabled(t *testing.T) {
	sesSvc, snsSvc := okSES(nil), okSNS(nil)
	h := createTestHandler(t, &Config{Timeout: time.Second}, sesSvc, snsSvc)

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
	assert.NotEmpty(t, output.NotificationID)
	sesSvc.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	snsSvc.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandler_Execute_SMSFailureAfterEmailIsPartial(t *testing.T) {
	h := createTestHandler(t, createTestConfig(), okSES(nil), failingSNS())

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, output.Status)
	assert.True(t, output.EmailSent)
	assert.False(t, output.SMSSent)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	smsOnly := &Config{Timeout: time.Second, SMSEnabled: true}

	tests := []struct {
		name     string
		cfg      *Config
		ses      *MockSESService
		sns      *MockSNSService
		mutate   func(in *Input)
		wantCode errors.ErrorCode
	}{
		{
			name:     "email rejected",
			cfg:      createTestConfig(),
			ses:      failingSES(),
			sns:      okSNS(nil),
			wantCode: errors.ErrCodeNotificationSendFailed,
		},
		{
			name:     "sms only and sms fails",
			cfg:      smsOnly,
			ses:      okSES(nil),
			sns:      failingSNS(),
			wantCode: errors.ErrCodeNotificationSendFailed,
		},
		{
			name:     "invalid phone",
			cfg:      createTestConfig(),
			ses:      okSES(nil),
			sns:      okSNS(nil),
			mutate:   func(in *Input) { in.RecipientPhone = "555-0123" },
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "missing email",
			cfg:      createTestConfig(),
			ses:      okSES(nil),
			sns:      okSNS(nil),
			mutate:   func(in *Input) { in.RecipientEmail = "" },
			wantCode: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, tt.cfg, tt.ses, tt.sns)
			in := createTestInput()
			if tt.mutate != nil {
				tt.mutate(in)
			}

			_, err := h.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestRenderReport_OmitsPathwayWhenEmpty(t *testing.T) {
	in := createTestInput()
	in.BestPathway = ""

	rep, err := renderReport(in)
	require.NoError(t, err)
	assert.NotContains(t, rep.Text, "Recommended")
	assert.NotContains(t, rep.HTML, "Recommended")
	assert.Contains(t, rep.Text, "Synergy:                    95.6%")
}
