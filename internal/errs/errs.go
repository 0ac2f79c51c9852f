// Package errs defines the error shapes returned to API clients.
//
// Every failure the service reports, from a missing query parameter to an
// unknown route, is funnelled into an HTTPError so clients always receive
// the same JSON envelope with optional per-field details.
package errs
