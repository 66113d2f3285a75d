package main

import (
	"errors"
	"fmt"
)

// ErrNoMatch means a service answered but had nothing for the query.
var ErrNoMatch = errors.New("no match found")

// APIError is a non-2xx response, or an error object inside a 2xx body.
type APIError struct {
	Service    string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s request failed (status %d). URL: %s. Details: %s",
		e.Service, e.StatusCode, e.URL, e.Body)
}

// InputError reports something the user typed that cannot be used.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Msg
}
