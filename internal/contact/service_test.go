package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-website/internal/common/errors"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/mail"
)

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
		Mailer: sender,
		Logger: logger.NewTestLogger(t),
	}, &Config{
		NotifyFrom: "noreply@kk-facility-management.de",
		NotifyTo:   "kontakt@kk-facility-management.de",
	})
}

func TestSubmitContact_Success(t *testing.T) {
	sender := &captureSender{}
	svc := newTestService(t, sender)

	resp, err := svc.SubmitContact(context.Background(), &Request{
		Name:    "Anna Muster",
		Email:   "anna@example.com",
		Message: "Bitte um Rückruf.",
	})

	require.Nil(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, MsgSent, resp.Message)
	require.Len(t, sender.msgs, 1)
	assert.Equal(t, "Neue Kontaktanfrage von Anna Muster", sender.msgs[0].Subject)
}

func TestSubmitContact_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"no name", &Request{Email: "a@b.com", Message: "Hallo"}},
		{"no email", &Request{Name: "Bob", Message: "Hallo"}},
		{"no message", &Request{Name: "Bob", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &captureSender{})

			resp, err := svc.SubmitContact(context.Background(), tt.req)

			assert.Nil(t, resp)
			require.NotNil(t, err)
			assert.Equal(t, errors.ErrCodeInvalidInput, err.Code)
			assert.Equal(t, MsgMissingFields, err.Message)
		})
	}
}

func TestSubmitContact_DeliveryFailureDoesNotFailResponse(t *testing.T) {
	svc := newTestService(t, &captureSender{err: assert.AnError})

	resp, err := svc.SubmitContact(context.Background(), &Request{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Hallo",
	})

	require.Nil(t, err)
	assert.True(t, resp.Success)
}

func TestBuildNotification_DefaultsForOptionalFields(t *testing.T) {
	msg := BuildNotification(&Request{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Hallo",
	}, "from@example.com", "to@example.com")

	assert.Contains(t, msg.Body, "<strong>Telefon:</strong> Nicht angegeben")
	assert.Contains(t, msg.Body, "<strong>Service:</strong> Nicht angegeben")
	assert.Equal(t, "bob@example.com", msg.ReplyTo)
}
