package formclient

import (
	"context"
	"net/http"
	"time"
)

// Transport is a thin HTTP client wrapper. A zero timeout keeps the
// net/http default.
type Transport struct {
	httpClient *http.Client
}

func NewTransport(timeout time.Duration) *Transport {
	return &Transport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	return t.httpClient.Do(req)
}

func (t *Transport) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return t.httpClient.Do(req)
}
