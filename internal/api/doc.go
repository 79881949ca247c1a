// Package api implements the HTTP handlers of the deck generation service:
// request decoding and validation, error-to-status mapping, and the CSV
// download surface. Handlers delegate all real work to the service layer and
// own no state between requests.
package api
