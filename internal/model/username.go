package model

import "github.com/deppfellow/request-params/internal/validation"

// UsernameQuery is bound by Echo's default binder from ?username=.
type UsernameQuery struct {
	Username string `query:"username" validate:"required,min=3,max=20,username"`
}

func (q *UsernameQuery) Validate() error {
	return validation.Struct(q)
}

// Message is a single human-readable confirmation.
type Message struct {
	Message string `json:"message"`
}

// Status is the body of the GET / liveness probe.
type Status struct {
	Status string `json:"status"`
}
