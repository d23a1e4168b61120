package contact

import (
	"context"
	"fmt"
	"html"
	"strings"

	"facility-website/internal/common/errors"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/mail"
	"facility-website/internal/common/metrics"
)

// Config holds the notification addressing for the contact service.
type Config struct {
	NotifyFrom string
	NotifyTo   string
}

type ServiceDependencies struct {
	Mailer mail.Sender
	Logger logger.Logger
}

// Service handles plain contact submissions: validate, notify, respond.
// No pricing step.
type Service struct {
	config *Config
	mailer mail.Sender
	logger logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	mailer := deps.Mailer
	if mailer == nil {
		mailer = mail.NopSender{}
	}
	return &Service{
		config: config,
		mailer: mailer,
		logger: deps.Logger.WithFields(map[string]interface{}{"component": "contact"}),
	}
}

func (s *Service) SubmitContact(ctx context.Context, req *Request) (*Response, *errors.StandardError) {
	if err := ValidateRequest(req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("contact", "rejected").Inc()
		return nil, err
	}

	s.logger.Info("contact request received", map[string]interface{}{
		"name": req.Name,
	})

	msg := BuildNotification(req, s.config.NotifyFrom, s.config.NotifyTo)
	if err := s.mailer.Send(ctx, msg); err != nil {
		sendErr := errors.NewNotificationSendFailedError("email", err)
		s.logger.Error("contact notification failed", map[string]interface{}{
			"error": sendErr.Details,
		})
	}

	metrics.SubmissionsTotal.WithLabelValues("contact", "accepted").Inc()

	return &Response{Success: true, Message: MsgSent}, nil
}

// BuildNotification assembles the mail payload for a contact submission.
func BuildNotification(req *Request, from, to string) *mail.Message {
	orDefault := func(v string) string {
		if v == "" {
			return "Nicht angegeben"
		}
		return html.EscapeString(v)
	}

	var b strings.Builder
	b.WriteString("<h3>Neue Kontaktanfrage</h3>\n")
	b.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>\n", html.EscapeString(req.Name)))
	b.WriteString(fmt.Sprintf("<p><strong>E-Mail:</strong> %s</p>\n", html.EscapeString(req.Email)))
	b.WriteString(fmt.Sprintf("<p><strong>Telefon:</strong> %s</p>\n", orDefault(req.Phone)))
	b.WriteString(fmt.Sprintf("<p><strong>Service:</strong> %s</p>\n", orDefault(req.Service)))
	b.WriteString("<p><strong>Nachricht:</strong></p>\n")
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(req.Message)))

	return &mail.Message{
		From:    from,
		To:      to,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Neue Kontaktanfrage von %s", req.Name),
		Body:    b.String(),
		IsHTML:  true,
	}
}
