package quote

import (
	"context"

	"facility-website/internal/common/errors"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/mail"
	"facility-website/internal/common/metrics"
	"facility-website/internal/pricing"
)

// Config holds the notification addressing for the quote service.
type Config struct {
	NotifyFrom string
	NotifyTo   string
}

type ServiceDependencies struct {
	Catalog *pricing.Catalog
	Mailer  mail.Sender
	Logger  logger.Logger
}

// Service validates quote requests, prices them against the catalog and hands
// the assembled notification to the mail collaborator. It holds no mutable
// state, so concurrent submissions need no coordination.
type Service struct {
	config  *Config
	catalog *pricing.Catalog
	mailer  mail.Sender
	logger  logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = pricing.DefaultCatalog()
	}
	mailer := deps.Mailer
	if mailer == nil {
		mailer = mail.NopSender{}
	}
	return &Service{
		config:  config,
		catalog: catalog,
		mailer:  mailer,
		logger:  deps.Logger.WithFields(map[string]interface{}{"component": "quote"}),
	}
}

// SubmitQuote processes one quote request: re-validate, price, notify, respond.
// Validation failures come back as structured errors, never as panics; only
// the HTTP layer translates codes to status lines.
func (s *Service) SubmitQuote(ctx context.Context, req *Request) (*Response, *errors.StandardError) {
	if err := ValidateRequest(req); err != nil {
		s.logger.Info("quote request rejected", map[string]interface{}{
			"code": string(err.Code),
		})
		metrics.SubmissionsTotal.WithLabelValues("quote", "rejected").Inc()
		return nil, err
	}

	est := s.catalog.Estimate(req.Services)

	s.logger.Info("quote request received", map[string]interface{}{
		"name":           req.Name,
		"services":       len(req.Services),
		"estimatedTotal": est.FormattedTotal(),
	})

	msg := BuildNotification(req, est, s.config.NotifyFrom, s.config.NotifyTo)
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Delivery is a best-effort side effect. A failed or slow mail peer
		// must not turn a priced quote into an error response.
		sendErr := errors.NewNotificationSendFailedError("email", err)
		s.logger.Error("quote notification failed", map[string]interface{}{
			"error": sendErr.Details,
		})
	}

	metrics.SubmissionsTotal.WithLabelValues("quote", "accepted").Inc()

	return &Response{
		Success:        true,
		Message:        MsgSubmitted,
		EstimatedTotal: est.FormattedTotal(),
	}, nil
}
