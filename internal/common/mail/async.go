package mail

import (
	"context"
	"sync"
	"time"

	"facility-website/internal/common/errors"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/metrics"
)

// AsyncSender decouples delivery from the request/response path. Send returns
// immediately; the wrapped sender runs on its own goroutine with its own
// timeout, and failures are logged and counted, never surfaced to the caller.
type AsyncSender struct {
	next    Sender
	timeout time.Duration
	logger  logger.Logger
	wg      sync.WaitGroup
}

func NewAsyncSender(next Sender, timeout time.Duration, log logger.Logger) *AsyncSender {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AsyncSender{next: next, timeout: timeout, logger: log}
}

// Send dispatches the delivery and always returns nil. The background context
// is deliberately detached from the request context: the response must not
// wait for a slow mail peer, and the delivery must survive the request ending.
func (a *AsyncSender) Send(_ context.Context, msg *Message) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := a.next.Send(ctx, msg); err != nil {
			sendErr := errors.NewNotificationSendFailedError("email", err)
			a.logger.Error("notification delivery failed", map[string]interface{}{
				"to":      msg.To,
				"subject": msg.Subject,
				"error":   sendErr.Details,
			})
			metrics.NotificationSends.WithLabelValues("failed").Inc()
			return
		}
		metrics.NotificationSends.WithLabelValues("sent").Inc()
	}()
	return nil
}

// Wait blocks until all in-flight deliveries finish. Called on shutdown.
func (a *AsyncSender) Wait() {
	a.wg.Wait()
}
