// Package sentinel holds infrastructure error facts. Adapters return them,
// optionally wrapped, and services translate them into domain errors.
package sentinel

import "errors"

// ErrUnavailable means an upstream service or resource could not be reached
// or gave no usable answer.
var ErrUnavailable = errors.New("unavailable")
