// Package http implements the REST API of the Candle Recall server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging and
// response compression are handled here before requests are delegated to the
// service layer. Failures are answered with JSON: field errors as
// models.ValidationErrorResponse, everything else as models.ErrorResponse.
package http
