// Package model holds the request and response shapes of the API.
//
// Request payloads implement validation.Validatable, and the ones that read
// path or query values implement validation.Bindable as well. Response types
// are plain structs serialized by Echo's JSON serializer.
package model
