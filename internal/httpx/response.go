package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/tracklight/wellbeing/internal/errs"
)

// ErrorBody is the wire envelope for every failure response.
type ErrorBody struct {
	Kind    errs.Kind         `json:"kind"`
	Message string            `json:"message"`
	Details []errs.FieldError `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		// best-effort error response; avoid writing partial JSON
		http.Error(w, `{"error":{"kind":"storage_unavailable","message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

// Error maps a tagged application error onto its HTTP status and
// envelope. Untagged errors become an opaque 500; internals never
// reach the client.
func Error(w http.ResponseWriter, err error) {
	e, ok := errs.AsError(err)
	if !ok {
		JSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Kind:    errs.KindStorageUnavailable,
			Message: "Internal server error",
		}})
		return
	}

	JSON(w, statusFor(e.Kind), ErrorResponse{Error: ErrorBody{
		Kind:    e.Kind,
		Message: e.Message,
		Details: e.Details,
	}})
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidationFailed,
		errs.KindDuplicateEmail,
		errs.KindDuplicateName,
		errs.KindNotRemovable,
		errs.KindInvalidState:
		return http.StatusBadRequest
	case errs.KindInvalidCredentials, errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
