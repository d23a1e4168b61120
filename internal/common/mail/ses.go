package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"facility-website/internal/common/logger"
)

// SESAPI is the slice of the SES client the sender needs, kept narrow for mocking.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender delivers messages through Amazon SES.
type SESSender struct {
	client SESAPI
	logger logger.Logger
}

func NewSESSender(ctx context.Context, region string, log logger.Logger) (*SESSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &SESSender{client: ses.NewFromConfig(cfg), logger: log}, nil
}

// NewSESSenderWithClient wires a prebuilt client, used by tests.
func NewSESSenderWithClient(client SESAPI, log logger.Logger) *SESSender {
	return &SESSender{client: client, logger: log}
}

func (s *SESSender) Send(ctx context.Context, msg *Message) error {
	if !ValidAddress(msg.To) {
		return fmt.Errorf("invalid 'to' email address: %s", msg.To)
	}
	if !ValidAddress(msg.From) {
		return fmt.Errorf("invalid 'from' email address: %s", msg.From)
	}

	body := &types.Body{}
	content := &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")}
	if msg.IsHTML {
		body.Html = content
	} else {
		body.Text = content
	}

	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}

	s.logger.Info("email sent", map[string]interface{}{
		"to":        msg.To,
		"messageId": aws.ToString(out.MessageId),
	})
	return nil
}
