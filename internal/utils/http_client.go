package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "study-shelf-client"

// HTTPClient embeds *resty.Client so callers use its request builders
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that gives up after
// timeout. A zero timeout leaves requests unbounded. Every request asks for
// JSON and identifies itself as the study shelf client.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
