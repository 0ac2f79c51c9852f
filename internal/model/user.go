package model

import "github.com/deppfellow/request-params/internal/validation"

// Address belongs to exactly one User and is always present on it.
//
// String fields are pointers so a missing key (nil) fails "required" while
// an empty string is accepted.
type Address struct {
	Street *string `json:"street" validate:"required"`
	City   *string `json:"city" validate:"required"`
	Zip    *string `json:"zip" validate:"required"`
}

// User is both the POST /users/ body and its response.
type User struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Address Address `json:"address"`
}

func (u *User) Validate() error {
	return validation.Struct(u)
}
