package quote

// Request is a submitted quote request. It is created from one form
// submission, consumed once, and discarded after the response is sent.
type Request struct {
	Company   string   `json:"company,omitempty"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Services  []string `json:"services"`
	Address   string   `json:"address,omitempty"`
	Size      string   `json:"size,omitempty"`
	Frequency string   `json:"frequency,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// Response is the success payload of POST /api/angebot.
type Response struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	EstimatedTotal string `json:"estimatedTotal"`
}

// User-facing texts. Clients match on these byte for byte, so they are part
// of the API contract.
const (
	MsgMissingFields = "Bitte füllen Sie alle Pflichtfelder aus und wählen Sie mindestens eine Leistung."
	MsgSubmitted     = "Ihre Angebots-Anfrage wurde erfolgreich übermittelt!"
	MsgInternalError = "Ein Fehler ist aufgetreten. Bitte versuchen Sie es später erneut."
)
