package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/safe"
	"github.com/go-chi/chi/v5"
)

func registerHandler(uc *usecase.RegistrationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload model.Record
		if err := decodeJSON(w, r, &payload); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		if _, err := uc.Register(r.Context(), chi.URLParam(r, "eventID"), payload); err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, successResponse{
			Success: true,
			Message: usecase.RegistrationConfirmation,
		})
	}
}

func registrationsListHandler(uc *usecase.RegistrationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regs, err := uc.List(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		if regs == nil {
			regs = []model.Record{}
		}
		writeJSON(r.Context(), w, http.StatusOK, regs)
	}
}

func registrationsExportHandler(uc *usecase.RegistrationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")

		// buffered so a failure can still produce an error status
		var buf bytes.Buffer
		if err := uc.ExportCSV(r.Context(), eventID, &buf); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="registrations-%s.csv"`, eventID))
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, buf.Bytes())
	}
}
