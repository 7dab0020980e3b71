// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the..
// validation package, and returns the response values the framework
// serializes. It acts as the interface between the HTTP request and the
// core logic.
package handler
