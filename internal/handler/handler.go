// Package handler contains the HTTP handlers.
//
// Every API handler is a HandlerFunc: it receives a request payload that
// Handle has already bound and validated, and returns the value to serialize.
// A handler body therefore never sees invalid input.
package handler
