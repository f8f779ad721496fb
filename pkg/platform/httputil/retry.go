package httputil

import (
	"io"
	"log"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultRetryMax is the retry budget for upstream calls when none is configured.
const DefaultRetryMax = 3

// NewRetryClient builds the retrying client shared by upstream adapters.
// A non-positive retryMax falls back to DefaultRetryMax; a zero timeout keeps
// the client default.
func NewRetryClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = log.New(io.Discard, "", 0)
	client.RetryMax = retryMax
	if retryMax <= 0 {
		client.RetryMax = DefaultRetryMax
	}
	client.RetryWaitMin = 50 * time.Millisecond
	client.RetryWaitMax = 500 * time.Millisecond
	if timeout > 0 {
		client.HTTPClient.Timeout = timeout
	}
	return client
}
