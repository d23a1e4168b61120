package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"facility-website/internal/common/logger"
	"facility-website/internal/common/observability"
	"facility-website/internal/contact"
	"facility-website/internal/quote"
)

// Options wires the router's collaborators.
type Options struct {
	Logger         logger.Logger
	Observability  *observability.Observability
	QuoteService   *quote.Service
	ContactService *contact.Service

	// StaticDir and TemplatesGlob are optional; when empty the router serves
	// only the API, which is what the tests use.
	StaticDir     string
	TemplatesGlob string
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(RequestID())
	r.Use(RequestMetrics(opts.Observability))
	r.Use(Recovery(opts.Logger))

	if opts.TemplatesGlob != "" {
		r.LoadHTMLGlob(opts.TemplatesGlob)
		r.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", gin.H{
				"title":       "KK-Facility-Management | Professionelle Gebäudedienstleistungen in Münster",
				"description": "Ihr Partner für Facility Management in Münster und Umgebung. Reinigung, Wartung, Instandhaltung und mehr.",
			})
		})
	}
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := NewAPI(opts.QuoteService, opts.ContactService, opts.Logger)
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/angebot", api.SubmitQuote)
		apiGroup.POST("/contact", api.SubmitContact)
	}

	return r
}
