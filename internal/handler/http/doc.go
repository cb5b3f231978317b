// Package http implements the HTTP transport layer of the lookup gateway.
//
// It exposes route wiring, request handlers, and middleware. Handlers parse
// query parameters, call the service layer and always answer with an
// envelope.Envelope. Request tracing, access logging, metrics and response
// compression are handled here before requests reach the handlers.
package http
