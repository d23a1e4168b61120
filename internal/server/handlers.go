package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"facility-website/internal/common/errors"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/validation"
	"facility-website/internal/contact"
	"facility-website/internal/quote"
)

// API exposes the form endpoints over HTTP. It only translates between the
// wire and the services; all business decisions live in the service packages.
type API struct {
	quotes   *quote.Service
	contacts *contact.Service
	logger   logger.Logger
}

func NewAPI(quotes *quote.Service, contacts *contact.Service, log logger.Logger) *API {
	return &API{
		quotes:   quotes,
		contacts: contacts,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// SubmitQuote handles POST /api/angebot.
func (a *API) SubmitQuote(c *gin.Context) {
	var req quote.Request
	if !a.decodeBody(c, quote.GetInputSchema(), quote.MsgMissingFields, &req) {
		return
	}

	resp, submitErr := a.quotes.SubmitQuote(c.Request.Context(), &req)
	if submitErr != nil {
		a.renderError(c, submitErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitContact handles POST /api/contact.
func (a *API) SubmitContact(c *gin.Context) {
	var req contact.Request
	if !a.decodeBody(c, contact.GetInputSchema(), contact.MsgMissingFields, &req) {
		return
	}

	resp, submitErr := a.contacts.SubmitContact(c.Request.Context(), &req)
	if submitErr != nil {
		a.renderError(c, submitErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// decodeBody reads the JSON body, checks it structurally against the endpoint
// schema and unmarshals it into out. Both an undecodable body and a schema
// violation answer 400 with the endpoint's required-fields text, so a broken
// client sees the same message a user with empty fields would.
func (a *API) decodeBody(c *gin.Context, schema validation.JSONSchema, invalidMsg string, out interface{}) bool {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		a.renderError(c, errors.NewParseError(invalidMsg, err))
		return false
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		a.renderError(c, errors.NewParseError(invalidMsg, err))
		return false
	}

	if result := validation.ValidateInput(doc, schema); !result.Valid {
		a.logger.Info("request failed schema validation", map[string]interface{}{
			"route":  c.FullPath(),
			"errors": result.Errors,
		})
		a.renderError(c, errors.NewInvalidInputError(invalidMsg))
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		a.renderError(c, errors.NewParseError(invalidMsg, err))
		return false
	}

	return true
}

// renderError writes the error envelope. User mistakes carry their message
// through; everything else answers with a generic text while the detail stays
// in the logs.
func (a *API) renderError(c *gin.Context, err *errors.StandardError) {
	status := errors.HTTPStatus(err.Code)

	if !errors.IsUserError(err.Code) {
		a.logger.Error("request failed", map[string]interface{}{
			"route":   c.FullPath(),
			"code":    string(err.Code),
			"details": err.Details,
		})
	}

	c.JSON(status, gin.H{"error": err.Message})
}
