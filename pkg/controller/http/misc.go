package http

import (
	"net/http"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// schemaHandler serves the resource schemas clients build their forms from
func schemaHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, uc.Registry().Schema())
	}
}

type agentRequest struct {
	Text string `json:"text"`
}

type agentResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Task    model.Record `json:"task"`
}

func agentHandler(uc *usecase.AgentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req agentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		task, err := uc.ParseTask(r.Context(), req.Text)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, agentResponse{
			Success: true,
			Message: usecase.AgentReply,
			Task:    task,
		})
	}
}

func seedHandler(uc *usecase.SeedUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.Seed(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		logging.From(r.Context()).Info("sample data seeded", "counts", result.Counts)

		writeJSON(r.Context(), w, http.StatusOK, struct {
			successResponse
			Counts map[string]int `json:"counts"`
		}{
			successResponse: successResponse{Success: true, Message: "Data berhasil di-seed"},
			Counts:          result.Counts,
		})
	}
}
