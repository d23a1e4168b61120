package quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-website/internal/common/errors"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/mail"
	"facility-website/internal/pricing"
)

// captureSender records the payloads the service hands to the mail collaborator.
type captureSender struct {
	msgs []*mail.Message
	err  error
}

func (c *captureSender) Send(_ context.Context, msg *mail.Message) error {
	c.msgs = append(c.msgs, msg)
	return c.err
}

func newTestService(t *testing.T, sender mail.Sender) *Service {
	t.Helper()
	return NewService(ServiceDependencies{
		Catalog: pricing.DefaultCatalog(),
		Mailer:  sender,
		Logger:  logger.NewTestLogger(t),
	}, &Config{
		NotifyFrom: "noreply@kk-facility-management.de",
		NotifyTo:   "kontakt@kk-facility-management.de",
	})
}

func validRequest() *Request {
	return &Request{
		Name:     "Anna Muster",
		Email:    "anna@example.com",
		Services: []string{"Gebäudereinigung", "Technischer Service"},
	}
}

func TestSubmitQuote_Success(t *testing.T) {
	svc := newTestService(t, &captureSender{})

	resp, err := svc.SubmitQuote(context.Background(), validRequest())

	require.Nil(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, MsgSubmitted, resp.Message)
	assert.Equal(t, "78.50", resp.EstimatedTotal)
}

func TestSubmitQuote_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"empty name", &Request{Email: "a@b.com", Services: []string{"Gebäudereinigung"}}},
		{"empty email", &Request{Name: "Bob", Services: []string{"Gebäudereinigung"}}},
		{"no services", &Request{Name: "Bob", Email: "a@b.com"}},
		{"empty services", &Request{Name: "Bob", Email: "a@b.com", Services: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &captureSender{}
			svc := newTestService(t, sender)

			resp, err := svc.SubmitQuote(context.Background(), tt.req)

			assert.Nil(t, resp)
			require.NotNil(t, err)
			assert.Equal(t, errors.ErrCodeInvalidInput, err.Code)
			assert.Equal(t, MsgMissingFields, err.Message)
			assert.Empty(t, sender.msgs, "a rejected request must not trigger a notification")
		})
	}
}

func TestSubmitQuote_UnknownServiceToleratedAtZero(t *testing.T) {
	svc := newTestService(t, &captureSender{})

	resp, err := svc.SubmitQuote(context.Background(), &Request{
		Name:     "Bob",
		Email:    "bob@example.com",
		Services: []string{"Gebäudereinigung", "Kristallkugelpolitur"},
	})

	require.Nil(t, err)
	assert.Equal(t, "13.50", resp.EstimatedTotal)
}

func TestSubmitQuote_Idempotent(t *testing.T) {
	svc := newTestService(t, &captureSender{})

	first, err1 := svc.SubmitQuote(context.Background(), validRequest())
	second, err2 := svc.SubmitQuote(context.Background(), validRequest())

	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, first.EstimatedTotal, second.EstimatedTotal)
}

func TestSubmitQuote_DeliveryFailureDoesNotFailResponse(t *testing.T) {
	sender := &captureSender{err: assert.AnError}
	svc := newTestService(t, sender)

	resp, err := svc.SubmitQuote(context.Background(), validRequest())

	require.Nil(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, sender.msgs, 1)
}

func TestSubmitQuote_SendsNotification(t *testing.T) {
	sender := &captureSender{}
	svc := newTestService(t, sender)

	_, err := svc.SubmitQuote(context.Background(), &Request{
		Company:  "Muster GmbH",
		Name:     "Anna Muster",
		Email:    "anna@example.com",
		Services: []string{"Gebäudereinigung"},
	})

	require.Nil(t, err)
	require.Len(t, sender.msgs, 1)
	msg := sender.msgs[0]
	assert.Equal(t, "kontakt@kk-facility-management.de", msg.To)
	assert.Equal(t, "Neue Angebots-Anfrage von Anna Muster (Muster GmbH)", msg.Subject)
	assert.Equal(t, "anna@example.com", msg.ReplyTo)
	assert.True(t, msg.IsHTML)
}
