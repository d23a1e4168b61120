package contact

// Request is a plain contact form submission. Unlike a quote request it
// carries no service selection to price, only a free-text message.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// Response is the success payload of POST /api/contact.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User-facing texts. Clients match on these byte for byte, so they are part
// of the API contract.
const (
	MsgMissingFields = "Bitte füllen Sie alle Pflichtfelder aus."
	MsgSent          = "Ihre Nachricht wurde erfolgreich gesendet!"
	MsgInternalError = "Ein Fehler ist aufgetreten. Bitte versuchen Sie es später erneut."
)
