// Package api handles incoming HTTP requests, routing, request decoding,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to
// business operations.
package api
