// Package validation binds request data into payload structs and checks it.
//
// Payloads bind themselves from path and query values with Echo's
// ValueBinder (or fall back to c.Bind for plain JSON bodies). Struct tags are
// then enforced with go-playground/validator. Both binding and validation
// failures come back as a single errs.HTTPError listing every failing field.
package validation
