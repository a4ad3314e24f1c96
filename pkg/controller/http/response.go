package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

const maxJSONBody = 1 << 20

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = errutil.Handle(ctx, err, "failed to encode JSON response")
	}
}

// decodeJSON reads a size-limited JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(usecase.ErrInvalidInput, "invalid JSON body", goerr.V("reason", err.Error()))
	}
	return nil
}

// errorStatus maps usecase errors to a status code and the message shown to
// the client
var errorStatus = []struct {
	target error
	status int
}{
	{model.ErrResourceNotFound, http.StatusNotFound},
	{usecase.ErrRecordNotFound, http.StatusNotFound},
	{usecase.ErrEventNotFound, http.StatusNotFound},
	{usecase.ErrUploadNotFound, http.StatusNotFound},
	{usecase.ErrInvalidInput, http.StatusBadRequest},
	{usecase.ErrUsernameTaken, http.StatusBadRequest},
	{usecase.ErrInvalidCredentials, http.StatusUnauthorized},
	{usecase.ErrInvalidToken, http.StatusUnauthorized},
	{usecase.ErrInvalidSecretCode, http.StatusForbidden},
	{usecase.ErrStorageNotConfigured, http.StatusServiceUnavailable},
}

// handleError writes err with the status its kind maps to
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		errutil.HandleHTTPWithMessage(ctx, w, err, http.StatusBadRequest, ve.Error())
		return
	}

	for _, e := range errorStatus {
		if errors.Is(err, e.target) {
			errutil.HandleHTTPWithMessage(ctx, w, err, e.status, e.target.Error())
			return
		}
	}

	errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
}
