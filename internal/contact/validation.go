package contact

import (
	"facility-website/internal/common/errors"
	"facility-website/internal/common/validation"
)

// GetInputSchema describes the structural shape of a contact request body.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"name", "email", "message"},
		Properties: map[string]validation.Property{
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
			"service": {
				Type:        "string",
				Description: "Service the inquiry is about (optional)",
				MaxLength:   validation.IntPtr(255),
			},
			"message": {
				Type:        "string",
				Description: "Free-text message",
				MaxLength:   validation.IntPtr(10000),
			},
		},
		AdditionalProperties: true,
	}
}

// ValidateRequest re-checks the submitted payload server-side.
func ValidateRequest(req *Request) *errors.StandardError {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return errors.NewInvalidInputError(MsgMissingFields)
	}
	return nil
}
