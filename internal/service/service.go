// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// data from the handler, applies the operation and reads what it needs
// through the repositories.
package service
