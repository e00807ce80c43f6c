// Package http implements the REST transport of the marketplace.
//
// It wires chi routes to the service layer and carries the request
// middleware: tracing, access logging, request metrics, security headers,
// timeouts and the access gate in front of every mutating route.
package http
