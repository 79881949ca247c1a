package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request DTO: validator caches parsed struct
// tags per type, so one instance per process is the right granularity.
var validate = validator.New()

// DecodeJSON reads the request body into dst. The body must hold exactly one
// JSON document; trailing content after the first document is rejected so a
// concatenated or truncated payload cannot half-apply.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// ValidateRequest runs the struct-tag validation rules on a decoded request
// DTO. Domain-level checks happen later, in the service; this only guards
// the transport shape (required fields, ranges).
func ValidateRequest(dst interface{}) error {
	return validate.Struct(dst)
}
