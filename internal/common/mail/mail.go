// Package mail delivers assembled notification payloads. The pipeline only
// depends on the Sender interface; concrete transports (SMTP, SES) and the
// async decoupling wrapper live here as well.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a fully assembled notification payload.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
	IsHTML  bool
}

// Sender attempts delivery of one message. Implementations must respect ctx
// cancellation and must not retry on their own.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// NopSender drops every message. Used when delivery is disabled.
type NopSender struct{}

func (NopSender) Send(context.Context, *Message) error { return nil }

// NewMessageID returns a unique RFC 5322 style message identifier.
func NewMessageID(host string) string {
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("<%d.%s@%s>", time.Now().UnixNano(), uuid.New().String()[:8], host)
}

// ValidAddress reports whether addr has the basic local@domain.tld shape.
func ValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parts := strings.Split(addr, "@")
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}
	if !strings.Contains(parts[1], ".") {
		return false
	}
	return true
}
