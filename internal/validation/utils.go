package validation

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/deppfellow/request-params/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that know how to validate
// themselves, usually by calling Struct on their own tags.
type Validatable interface {
	Validate() error
}

// Bindable is implemented by payloads that read their own path and query
// values. Payloads that don't implement it are bound with c.Bind.
type Bindable interface {
	Bind(c echo.Context) error
}

// FieldMessager is implemented by parse errors that carry a client-facing
// message of their own (e.g. a date that isn't YYYY-MM-DD).
type FieldMessager interface {
	FieldMessage() string
}

// CustomValidationError is a single rule violation that cannot be expressed
// with a validator tag.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate can return it directly.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. payload.Bind(c) when payload is Bindable, c.Bind(payload) otherwise.
//  2. Binding problems that belong to a field (missing value, not a number,
//     wrong JSON type) are collected; anything else, such as a malformed JSON
//     document, is returned straight away.
//  3. payload.Validate() runs even after field-level binding failures so the
//     client sees every broken field at once. A field already reported by
//     binding is not reported twice.
//
// payload must be a pointer so binding can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	fieldErrors, err := bindPayload(c, payload)
	if err != nil {
		return err
	}

	validationErrors, err := validateStruct(payload)
	if err != nil {
		return err
	}

	fieldErrors = mergeFieldErrors(fieldErrors, validationErrors)
	if len(fieldErrors) > 0 {
		return errs.NewUnprocessableEntityError("Validation failed", fieldErrors)
	}

	return nil
}

func bindPayload(c echo.Context, payload Validatable) ([]errs.FieldError, error) {
	var err error
	if b, ok := payload.(Bindable); ok {
		err = b.Bind(c)
	} else {
		err = c.Bind(payload)
	}
	if err == nil {
		return nil, nil
	}

	return bindingFieldErrors(err)
}

// bindingFieldErrors splits a (possibly joined) binding error into field
// errors. The first error that cannot be pinned to a field wins and is
// returned as-is.
func bindingFieldErrors(err error) ([]errs.FieldError, error) {
	var fieldErrors []errs.FieldError

	for _, e := range flatten(err) {
		var bindingErr *echo.BindingError
		var typeErr *json.UnmarshalTypeError
		var stdTypeErr *stdjson.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		var stdSyntaxErr *stdjson.SyntaxError
		var httpErr *errs.HTTPError
		var customErrors CustomValidationErrors

		switch {
		case errors.As(e, &customErrors):
			for _, ce := range customErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{Field: ce.Field, Error: ce.Message})
			}

		case errors.As(e, &bindingErr):
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: bindingErr.Field,
				Error: bindingMessage(bindingErr),
			})

		case errors.As(e, &typeErr):
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: typeErrorField(typeErr.Struct, typeErr.Field),
				Error: typeErrorMessage(typeErr.Type),
			})

		case errors.As(e, &stdTypeErr):
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: typeErrorField(stdTypeErr.Struct, stdTypeErr.Field),
				Error: typeErrorMessage(stdTypeErr.Type),
			})

		case errors.As(e, &syntaxErr), errors.As(e, &stdSyntaxErr), errors.Is(e, io.ErrUnexpectedEOF):
			return nil, errs.NewBadRequestError("Malformed JSON body", true, nil, nil, nil)

		case errors.As(e, &httpErr):
			return nil, httpErr

		default:
			// *echo.HTTPError (415 and friends) and unknown errors go to the
			// global error handler untouched.
			return nil, e
		}
	}

	return fieldErrors, nil
}

// RequireQueryParams reports every name absent from the query string. A
// parameter given with an empty value (?name=) is present.
func RequireQueryParams(c echo.Context, names ...string) error {
	params := c.QueryParams()

	var missing CustomValidationErrors
	for _, name := range names {
		if _, ok := params[name]; !ok {
			missing = append(missing, CustomValidationError{Field: name, Message: "is required"})
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return missing
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}

	return []error{err}
}

// bindingMessage turns Echo's binder wording into a client-facing message.
func bindingMessage(err *echo.BindingError) string {
	var fm FieldMessager
	if err.Internal != nil && errors.As(err.Internal, &fm) {
		return fm.FieldMessage()
	}

	msg := fmt.Sprint(err.Message)
	switch {
	case msg == "required field value is empty":
		return "is required"
	case strings.Contains(msg, "float"):
		return "must be a valid number"
	case strings.Contains(msg, "to int"), strings.Contains(msg, "to uint"):
		return "must be a valid integer"
	case strings.Contains(msg, "bool"):
		return "must be a valid boolean"
	default:
		return "has an invalid value"
	}
}

func typeErrorField(structName, field string) string {
	if field != "" {
		return field
	}
	if structName != "" {
		return strings.ToLower(structName)
	}
	return "body"
}

func typeErrorMessage(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}

	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Struct, reflect.Map:
		return "must be an object"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	default:
		return fmt.Sprintf("must be of type %s", t.Kind())
	}
}

// validateStruct calls v.Validate() and extracts field errors if validation
// fails. A non-nil error means the payload could not be validated at all.
func validateStruct(v Validatable) ([]errs.FieldError, error) {
	err := v.Validate()
	if err == nil {
		return nil, nil
	}

	return extractValidationError(err)
}

// extractValidationError converts whatever Validate returned into field
// errors. Validate may join several results (e.g. one per bound struct).
func extractValidationError(err error) ([]errs.FieldError, error) {
	var fieldErrors []errs.FieldError

	for _, e := range flatten(err) {
		var customErrors CustomValidationErrors
		var validationErrors validator.ValidationErrors

		switch {
		case errors.As(e, &customErrors):
			for _, ce := range customErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: ce.Field,
					Error: ce.Message,
				})
			}

		case errors.As(e, &validationErrors):
			for _, fe := range validationErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: fieldPath(fe),
					Error: tagMessage(fe),
				})
			}

		default:
			// *validator.InvalidValidationError and friends are programming
			// mistakes, not client errors.
			return nil, fmt.Errorf("validating payload: %w", e)
		}
	}

	return fieldErrors, nil
}

// fieldPath drops the root struct name from the namespace:
// "User.address.zip" -> "address.zip".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		// For strings min/max count characters, for numbers they bound the value.
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "username":
		return "must start with a letter followed by one or more letters or digits"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

func mergeFieldErrors(first, second []errs.FieldError) []errs.FieldError {
	seen := make(map[string]struct{}, len(first))
	for _, fe := range first {
		seen[fe.Field] = struct{}{}
	}

	merged := first
	for _, fe := range second {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		merged = append(merged, fe)
	}

	return merged
}
