// Package schema defines the request and response shapes the API
// validates and serializes.
//
// Every type here is a request-scoped value object: it is populated from
// one inbound request, validated once, used inside the handler, and then
// discarded. Constraints are expressed as `validate` struct tags consumed
// by the validation package.
package schema
