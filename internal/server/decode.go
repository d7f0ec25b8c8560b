package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/career-matcher/internal/schemas"
	schemafiles "github.com/jonathan/career-matcher/schemas"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// validatable is implemented by every request type in internal/types.
type validatable interface {
	Validate() error
}

// Top-level request fields that carry a single profile or a list of them.
var (
	profileFields     = []string{"profile", "current", "incoming"}
	profileListFields = []string{"profiles"}
)

// decodeRequest reads a JSON body into dst. Embedded profiles are checked
// against the profile schema, unknown fields are rejected, and the decoded
// value is run through its struct validator.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst validatable) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrValidation{Field: "body", Message: fmt.Sprintf("request body exceeds %d bytes", maxBodyBytes)}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}

	if err := validateProfiles(body); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	return fromValidator(dst.Validate())
}

// validateProfiles runs the profile schema over every profile-valued field
// of a request body. Malformed JSON is left for the decoder to report.
func validateProfiles(body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	for _, name := range profileFields {
		if raw, ok := fields[name]; ok {
			if err := schemas.Validate(schemafiles.Profile, raw); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	for _, name := range profileListFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var profiles []json.RawMessage
		if err := json.Unmarshal(raw, &profiles); err != nil {
			return &ErrValidation{Field: name, Message: "must be an array of profiles"}
		}
		for i, p := range profiles {
			if err := schemas.Validate(schemafiles.Profile, p); err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
		}
	}
	return nil
}
