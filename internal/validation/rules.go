package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UsernamePattern is a letter followed by one or more letters or digits.
const UsernamePattern = `^[a-zA-Z][a-zA-Z0-9]+$`

var usernameRegex = regexp.MustCompile(UsernamePattern)

// validate is shared by every payload. *validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire names so "address.zip" reaches the client
	// rather than "Address.Zip".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})

	return v
}

// Struct runs the tag rules on v. Payloads call it from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}
