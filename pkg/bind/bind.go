// Package bind decodes a JSON request body into a struct and applies its
// `validate` tags in one step, so controllers handle exactly two failure
// shapes: an undecodable body and field-level validation errors.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/merchstore/merchstore/config"
	"github.com/merchstore/merchstore/pkg/validate"
)

// JSON decodes r.Body into dest and validates it. The body is capped at
// MAX_BODY_BYTES.
//
// A non-nil errs map carries validation failures keyed by field name; a
// non-nil err means the body could not be decoded at all (malformed JSON or
// over the size cap).
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, fmt.Errorf("malformed JSON body: %w", err)
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
