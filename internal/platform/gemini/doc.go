// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns the one network boundary of the pipeline:
// credentials are taken per call and never retained, and endpoint failures
// are classified into the generation package's typed errors without retry.
package gemini
