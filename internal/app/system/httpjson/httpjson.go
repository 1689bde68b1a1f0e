// Package httpjson holds the JSON request/response conventions for the API:
// a fixed error envelope, typed error codes, and body decoding with a size
// cap.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Error codes surfaced in the envelope. Clients switch on these, not on
// the human-readable message.
const (
	CodeValidation      = "validation_error"
	CodeDuplicateSlug   = "duplicate_slug"
	CodeDuplicateEmail  = "duplicate_email"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeInternal        = "internal_error"
)

// maxBodyBytes caps JSON request bodies. Post content is markdown text;
// 1 MiB is generous.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Write sends v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error sends the standard error envelope.
func Error(w http.ResponseWriter, status int, code, message string) {
	Write(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// Internal logs err and sends a generic 500. The error detail stays in the
// logs, not in the response.
func Internal(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, CodeInternal, "an internal error occurred")
}

// Decode reads a JSON body into dst, enforcing the size cap and rejecting
// unknown fields. A decode failure is a client error.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// Trailing garbage after the object is also a malformed request.
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
