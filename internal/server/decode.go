package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
)

// decodeJSONBody decodes a request body into dst, rejecting unknown fields,
// oversized bodies and trailing content. All failures surface as validation
// errors so the handler answers 400.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body must not be empty", domain.ErrValidation)
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must contain a single JSON object", domain.ErrValidation)
	}
	return nil
}
