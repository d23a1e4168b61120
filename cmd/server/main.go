package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"facility-website/internal/common/config"
	"facility-website/internal/common/logger"
	"facility-website/internal/common/mail"
	"facility-website/internal/common/observability"
	"facility-website/internal/contact"
	"facility-website/internal/pricing"
	"facility-website/internal/quote"
	"facility-website/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting", map[string]interface{}{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	sender, async := buildSender(cfg, log)

	catalog := pricing.NewCatalog(cfg.Pricing.Rates)

	quotes := quote.NewService(quote.ServiceDependencies{
		Catalog: catalog,
		Mailer:  sender,
		Logger:  log,
	}, &quote.Config{
		NotifyFrom: cfg.Notifications.Email.FromEmail,
		NotifyTo:   cfg.Notifications.Email.ToEmail,
	})

	contacts := contact.NewService(contact.ServiceDependencies{
		Mailer: sender,
		Logger: log,
	}, &contact.Config{
		NotifyFrom: cfg.Notifications.Email.FromEmail,
		NotifyTo:   cfg.Notifications.Email.ToEmail,
	})

	router := server.NewRouter(server.Options{
		Logger:         log,
		Observability:  obs,
		QuoteService:   quotes,
		ContactService: contacts,
		StaticDir:      cfg.Server.StaticDir,
		TemplatesGlob:  cfg.Server.TemplatesGlob,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", map[string]interface{}{"signal": sig.String()})
	case err := <-errCh:
		log.WithError(err).Error("server failed", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed", nil)
	}

	// Let in-flight notification deliveries finish before the process exits.
	if async != nil {
		async.Wait()
	}

	log.Info("stopped", nil)
}

// buildSender picks the delivery backend from the configuration. Delivery is
// always wrapped in the async sender so a slow mail server never holds up a
// form response.
func buildSender(cfg *config.Config, log logger.Logger) (mail.Sender, *mail.AsyncSender) {
	if !cfg.Notifications.Email.Enabled {
		log.Warn("email notifications disabled, submissions will only be logged", nil)
		return mail.NopSender{}, nil
	}

	var backend mail.Sender
	var err error

	switch cfg.Notifications.Email.Provider {
	case "ses":
		backend, err = mail.NewSESSender(context.Background(), cfg.Notifications.AWS.Region, log)
	default:
		backend, err = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.Notifications.SMTP.Host,
			Port:     cfg.Notifications.SMTP.Port,
			Username: cfg.Notifications.SMTP.Username,
			Password: cfg.Notifications.SMTP.Password,
			UseTLS:   cfg.Notifications.SMTP.UseTLS,
		}, log)
	}
	if err != nil {
		log.WithError(err).Error("failed to initialize mail backend", map[string]interface{}{
			"provider": cfg.Notifications.Email.Provider,
		})
		os.Exit(1)
	}

	async := mail.NewAsyncSender(backend, config.GetDuration(cfg.Notifications.Email.Timeout), log)
	return async, async
}
