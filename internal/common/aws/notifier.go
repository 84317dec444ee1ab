// internal/common/aws/notifier.go
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SESService is the slice of the SES API the notifier uses.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSService is the slice of the SNS API the notifier uses.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier sends email through SES and SMS through SNS. Either client may be
// nil, in which case that channel reports an error when used.
type Notifier struct {
	ses       SESService
	sns       SNSService
	fromEmail string
}

func NewNotifier(sesClient SESService, snsClient SNSService, fromEmail string) *Notifier {
	return &Notifier{ses: sesClient, sns: snsClient, fromEmail: fromEmail}
}

// NewNotifierFromRegion builds SES and SNS clients from the default AWS
// credential chain.
func NewNotifierFromRegion(ctx context.Context, region, fromEmail string) (*Notifier, error) {
	sesClient, err := NewSESClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("ses client: %w", err)
	}
	snsClient, err := NewSNSClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("sns client: %w", err)
	}
	return NewNotifier(sesClient, snsClient, fromEmail), nil
}

// SendEmail sends a text+HTML message and returns the SES message id.
func (n *Notifier) SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error) {
	if n.ses == nil {
		return "", fmt.Errorf("email channel not configured")
	}

	body := &sestypes.Body{
		Text: &sestypes.Content{Data: awssdk.String(textBody), Charset: awssdk.String("UTF-8")},
	}
	if htmlBody != "" {
		body.Html = &sestypes.Content{Data: awssdk.String(htmlBody), Charset: awssdk.String("UTF-8")}
	}

	out, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{ToAddresses: []string{to}},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: awssdk.String(subject), Charset: awssdk.String("UTF-8")},
			Body:    body,
		},
		Source: awssdk.String(n.fromEmail),
	})
	if err != nil {
		return "", err
	}
	return awssdk.ToString(out.MessageId), nil
}

// SendSMS publishes a transactional SMS to an E.164 number.
func (n *Notifier) SendSMS(ctx context.Context, phone, message string) (string, error) {
	if n.sns == nil {
		return "", fmt.Errorf("sms channel not configured")
	}

	out, err := n.sns.Publish(ctx, &sns.PublishInput{
		PhoneNumber: awssdk.String(phone),
		Message:     awssdk.String(message),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    awssdk.String("String"),
				StringValue: awssdk.String("Transactional"),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return awssdk.ToString(out.MessageId), nil
}
