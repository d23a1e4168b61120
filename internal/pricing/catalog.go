// Package pricing computes quote estimates against the service price catalog.
package pricing

import "strconv"

// Catalog maps a service name to its hourly rate. A Catalog is immutable
// read-only configuration; it is never mutated after construction.
type Catalog struct {
	rates map[string]float64
}

// DefaultRates are the standard market hourly rates per service.
var DefaultRates = map[string]float64{
	"Gebäudereinigung":    13.50,
	"Technischer Service": 65.00,
	"Außenanlagenpflege":  28.00,
	"Sicherheitsdienst":   18.50,
	"Entsorgungsservice":  150.00,
	"Facility Management": 8.50,
}

// NewCatalog builds a catalog from a rate table, copying the map so later
// changes to the argument cannot leak in.
func NewCatalog(rates map[string]float64) *Catalog {
	copied := make(map[string]float64, len(rates))
	for name, rate := range rates {
		copied[name] = rate
	}
	return &Catalog{rates: copied}
}

// DefaultCatalog returns a catalog with the six offered services.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultRates)
}

// Rate returns the hourly rate for a service. Unknown service names price at
// zero rather than being rejected.
func (c *Catalog) Rate(service string) float64 {
	return c.rates[service]
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.rates)
}

// LineItem is one priced service of an estimate.
type LineItem struct {
	Service string  `json:"service"`
	Rate    float64 `json:"price"`
}

// Estimate is the derived pricing breakdown for one request. It lives for a
// single request/response cycle and is never persisted.
type Estimate struct {
	LineItems []LineItem `json:"lineItems"`
	Total     float64    `json:"estimatedTotal"`
}

// Estimate prices the requested services in submission order.
func (c *Catalog) Estimate(services []string) *Estimate {
	est := &Estimate{
		LineItems: make([]LineItem, 0, len(services)),
	}
	for _, service := range services {
		rate := c.Rate(service)
		est.LineItems = append(est.LineItems, LineItem{Service: service, Rate: rate})
		est.Total += rate
	}
	return est
}

// FormattedTotal renders the total with two decimal places.
func (e *Estimate) FormattedTotal() string {
	return FormatAmount(e.Total)
}

// FormatAmount renders a currency amount with two decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
