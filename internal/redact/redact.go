// Package redact scrubs sensitive information from strings before they are
// logged or returned in error responses. The generation credential travels
// through request handling and client errors, so anything resembling an API
// key, bearer token, query-string secret, or local file path is replaced
// before a message leaves the process.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
)

// Precompiled regex patterns
var (
	// Labeled credentials: api_key=..., key: ..., token '...'
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|credential)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Authorization header values
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// Google API keys carry a fixed prefix
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{30,}`)

	// Keys leaking through query strings
	queryKeyRegex = regexp.MustCompile(`(?i)([?&](api)?key=)[^&\s]+`)

	// Local file paths in export errors
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{apiKeyRegex, "$1$2" + RedactedKeyPlaceholder},
		{bearerRegex, RedactedKeyPlaceholder},
		{googleKeyRegex, RedactedKeyPlaceholder},
		{queryKeyRegex, "$1" + RedactedKeyPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
