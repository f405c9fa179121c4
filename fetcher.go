package documind

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// RawPage is the HTML body of a fetched page together with the URL it was
// fetched from. It is produced by a Loader and consumed once by a
// DOMBuilder.
type RawPage struct {
	HTML string
	URL  string
}

// Loader retrieves raw HTML from URLs.
type Loader interface {
	// Load issues a GET request for url and returns the full response body.
	// A non-2xx response is reported as a *FetchError.
	// The context controls timeout and cancellation.
	Load(ctx context.Context, url string) (*RawPage, error)
}

// FetchError is returned when the upstream page answered with a status
// outside the success range.
type FetchError struct {
	StatusCode int
	Status     string
}

// NewFetchError builds a FetchError from an HTTP status line such as
// "404 Not Found". The status text is split off the numeric code.
func NewFetchError(code int, status string) *FetchError {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	return &FetchError{StatusCode: code, Status: text}
}

// Message returns the client-facing message.
func (e *FetchError) Message() string {
	return "Failed to fetch URL: " + e.Status
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message())
}
