package httputil

import (
	"testing"
	"time"
)

func TestNewRetryClient(t *testing.T) {
	t.Run("unset budget uses the default", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			if got := NewRetryClient(n, 0).RetryMax; got != DefaultRetryMax {
				t.Fatalf("retryMax %d: expected %d retries, got %d", n, DefaultRetryMax, got)
			}
		}
	})

	t.Run("explicit budget and timeout are kept", func(t *testing.T) {
		client := NewRetryClient(5, 2*time.Second)
		if client.RetryMax != 5 {
			t.Fatalf("expected 5 retries, got %d", client.RetryMax)
		}
		if client.HTTPClient.Timeout != 2*time.Second {
			t.Fatalf("expected 2s timeout, got %s", client.HTTPClient.Timeout)
		}
	})
}
