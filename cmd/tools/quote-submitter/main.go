// quote-submitter posts a quote request against a running instance the same
// way the site's form does, local validation included. Useful for smoke
// testing a deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"facility-website/internal/common/logger"
	"facility-website/pkg/formclient"
)

// terminalView renders controller output on stdout.
type terminalView struct{}

func (terminalView) SetSubmitting(busy bool) {
	if busy {
		fmt.Println("Wird gesendet...")
	}
}

func (terminalView) ShowMessage(kind formclient.MessageKind, text string) {
	fmt.Printf("[%s] %s\n", kind, text)
}

func (terminalView) HideMessage() {}

func (terminalView) ClearFields() {}

func main() {
	var (
		endpoint  = flag.String("endpoint", "http://localhost:3000/api/angebot", "submission endpoint")
		name      = flag.String("name", "", "contact name")
		email     = flag.String("email", "", "contact email address")
		services  = flag.String("services", "", "comma-separated service names")
		company   = flag.String("company", "", "company name")
		phone     = flag.String("phone", "", "phone number")
		address   = flag.String("address", "", "site address")
		size      = flag.String("size", "", "building area in square meters")
		frequency = flag.String("frequency", "", "service interval")
		message   = flag.String("message", "", "free-text notes")
		timeout   = flag.Duration("timeout", 10*time.Second, "request timeout")
		verbose   = flag.Bool("v", false, "log the HTTP exchange")
	)
	flag.Parse()

	values := url.Values{}
	values.Set("name", *name)
	values.Set("email", *email)
	values.Set("company", *company)
	values.Set("phone", *phone)
	values.Set("address", *address)
	values.Set("size", *size)
	values.Set("frequency", *frequency)
	values.Set("message", *message)
	for _, s := range strings.Split(*services, ",") {
		if s = strings.TrimSpace(s); s != "" {
			values.Add("services", s)
		}
	}

	log := logger.NewNoOpLogger()
	if *verbose {
		log = logger.NewStructured("debug", "console")
	}

	ctrl := formclient.NewController(formclient.ControllerDependencies{
		Transport: formclient.NewTransport(*timeout),
		View:      terminalView{},
		Logger:    log,
	}, &formclient.Config{Endpoint: *endpoint})

	if err := ctrl.Submit(context.Background(), values); err != nil {
		os.Exit(1)
	}
}
