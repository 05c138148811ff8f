// Package network provides the pre-configured HTTP client shared by every server call.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// Timeouts are generous because 115 share listings routinely take tens of seconds.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport tunes the default transport for a small number of hosts
// hit concurrently (season fan-out, cache refreshes).
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 32
	t.MaxIdleConnsPerHost = 16
	t.MaxConnsPerHost = 64
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
