// Package triphttp guards HTTP requests with a trip breaker.
package triphttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tripkit/trip"
)

// Transport is an http.RoundTripper that wraps requests in a breaker.
// Responses with a 5xx status are reported to the breaker as breaking
// failures but are still returned to the caller. While the breaker is
// unavailable, requests fail with trip.ErrUnavailable without reaching the
// base transport.
type Transport struct {
	// Base performs the requests. Defaults to http.DefaultTransport.
	Base http.RoundTripper

	// Breaker guards the requests. Required.
	Breaker *trip.Breaker
}

// StatusError is the error the breaker observes for a 5xx response. Callers
// never see it: the response is unwrapped and returned as a success. A custom
// breaker condition may match it to tune which statuses count as breaking.
type StatusError struct {
	Code int

	resp *http.Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error: status %d", e.Code)
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := trip.Run(req.Context(), t.Breaker, func(ctx context.Context) (*http.Response, error) {
		resp, err := t.base().RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, &StatusError{Code: resp.StatusCode, resp: resp}
		}
		return resp, nil
	})

	var se *StatusError
	if errors.As(err, &se) {
		return se.resp, nil
	}
	return resp, err
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
