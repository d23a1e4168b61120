package quote

import (
	"facility-website/internal/common/errors"
	"facility-website/internal/common/validation"
)

// GetInputSchema describes the structural shape of a quote request body.
// AdditionalProperties stays true so a form that grows a field does not break
// older servers.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"name", "email", "services"},
		Properties: map[string]validation.Property{
			"company": {
				Type:        "string",
				Description: "Company name (optional)",
				MaxLength:   validation.IntPtr(255),
			},
			"name": {
				Type:        "string",
				Description: "Contact name",
				MaxLength:   validation.IntPtr(255),
			},
			"email": {
				Type:        "string",
				Description: "Contact email address",
				MaxLength:   validation.IntPtr(255),
			},
			"phone": {
				Type:        "string",
				Description: "Phone number, free text (optional)",
				MaxLength:   validation.IntPtr(100),
			},
			"services": {
				Type:        "array",
				Description: "Requested service names",
				Items:       &validation.Property{Type: "string"},
			},
			"address": {
				Type:        "string",
				Description: "Site address (optional)",
				MaxLength:   validation.IntPtr(500),
			},
			"size": {
				Type:        "string",
				Description: "Building area in square meters (optional)",
				MaxLength:   validation.IntPtr(50),
			},
			"frequency": {
				Type:        "string",
				Description: "Service interval (optional)",
				MaxLength:   validation.IntPtr(100),
			},
			"message": {
				Type:        "string",
				Description: "Free-text notes (optional)",
				MaxLength:   validation.IntPtr(10000),
			},
		},
		AdditionalProperties: true,
	}
}

// ValidateRequest re-checks the submitted payload server-side. The client is
// never trusted. Returns nil when the request is acceptable.
func ValidateRequest(req *Request) *errors.StandardError {
	if req.Name == "" || req.Email == "" || len(req.Services) == 0 {
		return errors.NewInvalidInputError(MsgMissingFields)
	}
	return nil
}
