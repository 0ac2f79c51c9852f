// Package lib holds helpers that do not belong to a single layer, such as
// the JSON serializer Echo is configured with.
package lib
