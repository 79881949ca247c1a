package generation

import "errors"

// Common errors returned by the generation package and its implementations.
// The pipeline performs no local recovery: each error is surfaced unchanged
// to the caller, which may retry with corrected input or a fresh request.
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate cards")

	// ErrAuthentication is returned when the endpoint rejects the supplied credential,
	// or when the credential is empty (checked before any network attempt).
	ErrAuthentication = errors.New("authentication rejected by language model endpoint")

	// ErrRateLimited is returned when the endpoint signals throttling.
	ErrRateLimited = errors.New("rate limited by language model endpoint")

	// ErrTransport is returned when the call cannot complete: network failure,
	// timeout, or a non-success status that is neither auth nor throttling.
	ErrTransport = errors.New("transport failure calling language model endpoint")

	// ErrMalformedResponse is returned when the model's text contains no
	// recognizable card structure. Partial garbage is never emitted as records.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
