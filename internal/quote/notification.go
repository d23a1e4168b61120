package quote

import (
	"fmt"
	"html"
	"strings"

	"facility-website/internal/common/mail"
	"facility-website/internal/pricing"
)

// BuildNotification assembles the mail payload summarizing a quote request.
// Layout mirrors the notification the office staff is used to: contact block,
// requested services with per-item rate, then optional site details and notes.
func BuildNotification(req *Request, est *pricing.Estimate, from, to string) *mail.Message {
	subject := fmt.Sprintf("Neue Angebots-Anfrage von %s", req.Name)
	if req.Company != "" {
		subject += fmt.Sprintf(" (%s)", req.Company)
	}

	var b strings.Builder

	b.WriteString("<h2>Neue Angebots-Anfrage</h2>\n")

	b.WriteString(`<div style="background: #f7fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">` + "\n")
	b.WriteString("<h3>Kontaktdaten</h3>\n")
	b.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>\n", html.EscapeString(req.Name)))
	if req.Company != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Unternehmen:</strong> %s</p>\n", html.EscapeString(req.Company)))
	}
	b.WriteString(fmt.Sprintf("<p><strong>E-Mail:</strong> %s</p>\n", html.EscapeString(req.Email)))
	if req.Phone != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Telefon:</strong> %s</p>\n", html.EscapeString(req.Phone)))
	}
	b.WriteString("</div>\n")

	b.WriteString(`<div style="background: #e6fffa; padding: 20px; border-radius: 8px; margin: 20px 0;">` + "\n")
	b.WriteString("<h3>Gewünschte Leistungen</h3>\n<ul>")
	for _, item := range est.LineItems {
		b.WriteString(fmt.Sprintf("<li>%s - ab %s€/h</li>", html.EscapeString(item.Service), pricing.FormatAmount(item.Rate)))
	}
	b.WriteString("</ul>\n")
	b.WriteString(fmt.Sprintf("<p><strong>Geschätzte Stundenkosten gesamt:</strong> ca. %s€/h</p>\n", est.FormattedTotal()))
	b.WriteString("</div>\n")

	if req.Address != "" || req.Size != "" || req.Frequency != "" {
		b.WriteString(`<div style="background: #fffbf0; padding: 20px; border-radius: 8px; margin: 20px 0;">` + "\n")
		b.WriteString("<h3>Objektdaten</h3>\n")
		if req.Address != "" {
			b.WriteString(fmt.Sprintf("<p><strong>Adresse:</strong> %s</p>\n", html.EscapeString(req.Address)))
		}
		if req.Size != "" {
			b.WriteString(fmt.Sprintf("<p><strong>Größe:</strong> %s m²</p>\n", html.EscapeString(req.Size)))
		}
		if req.Frequency != "" {
			b.WriteString(fmt.Sprintf("<p><strong>Häufigkeit:</strong> %s</p>\n", html.EscapeString(req.Frequency)))
		}
		b.WriteString("</div>\n")
	}

	if req.Message != "" {
		b.WriteString(`<div style="background: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">` + "\n")
		b.WriteString("<h3>Zusätzliche Informationen</h3>\n")
		escaped := html.EscapeString(req.Message)
		b.WriteString(fmt.Sprintf("<p>%s</p>\n", strings.ReplaceAll(escaped, "\n", "<br>")))
		b.WriteString("</div>\n")
	}

	b.WriteString(`<p style="color: #666; font-size: 12px; margin-top: 30px;">` + "\n")
	b.WriteString("Diese Anfrage wurde über die Website von KK-Facility-Management gesendet.\n</p>\n")

	return &mail.Message{
		From:    from,
		To:      to,
		ReplyTo: req.Email,
		Subject: subject,
		Body:    b.String(),
		IsHTML:  true,
	}
}
