package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"bizval-service/internal/common/logger"
)

// SESSender delivers email through AWS SES.
type SESSender struct {
	client *ses.Client
	logger logger.Logger
}

func NewSESSender(ctx context.Context, region string, log logger.Logger) (*SESSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESSender{
		client: ses.NewFromConfig(cfg),
		logger: log,
	}, nil
}

func (s *SESSender) Send(ctx context.Context, msg Message) error {
	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(msg.HTMLBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}

	s.logger.Info("email sent", map[string]interface{}{
		"to":        msg.To,
		"messageId": aws.ToString(out.MessageId),
	})
	return nil
}

// LogSender writes the message to the log instead of delivering it. Used
// when SES is disabled in local development.
type LogSender struct {
	Logger logger.Logger
}

func (l *LogSender) Send(_ context.Context, msg Message) error {
	l.Logger.Info("email delivery disabled, dropping message", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
		"bytes":   len(msg.HTMLBody),
	})
	return nil
}
