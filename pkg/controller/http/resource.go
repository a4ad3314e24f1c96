package http

import (
	"net/http"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/auth"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// resourceHandler serves the generic CRUD routes of every schema resource
type resourceHandler struct {
	uc     *usecase.ResourceUseCase
	authUC AuthUseCase
}

// resolve looks up the resource named in the path. Hidden resources are not
// reachable through the generic routes.
func (h *resourceHandler) resolve(w http.ResponseWriter, r *http.Request) (*config.ResourceSchema, bool) {
	name := types.ResourceName(chi.URLParam(r, "resource"))
	schema, err := h.uc.Schema(name)
	if err == nil && schema.Hidden {
		err = goerr.Wrap(model.ErrResourceNotFound, "resource is not exposed", goerr.V(usecase.ResourceKey, name))
	}
	if err != nil {
		handleError(r.Context(), w, err)
		return nil, false
	}
	return schema, true
}

// readable enforces auth for non-public resources
func (h *resourceHandler) readable(w http.ResponseWriter, r *http.Request, schema *config.ResourceSchema) (*http.Request, bool) {
	if schema.Public {
		return r, true
	}
	token, err := authenticate(h.authUC, r)
	if err != nil {
		handleError(r.Context(), w, err)
		return nil, false
	}
	return r.WithContext(auth.ContextWithToken(r.Context(), token)), true
}

func (h *resourceHandler) list(w http.ResponseWriter, r *http.Request) {
	schema, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if r, ok = h.readable(w, r, schema); !ok {
		return
	}

	query := make(map[string]string)
	for param := range schema.Filters {
		query[param] = r.URL.Query().Get(param)
	}

	records, err := h.uc.List(r.Context(), schema.Endpoint, query)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	if records == nil {
		records = []model.Record{}
	}
	writeJSON(r.Context(), w, http.StatusOK, records)
}

func (h *resourceHandler) get(w http.ResponseWriter, r *http.Request) {
	schema, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if r, ok = h.readable(w, r, schema); !ok {
		return
	}

	rec, err := h.uc.Get(r.Context(), schema.Endpoint, chi.URLParam(r, "key"))
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, rec)
}

func (h *resourceHandler) create(w http.ResponseWriter, r *http.Request) {
	schema, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var payload model.Record
	if err := decodeJSON(w, r, &payload); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	rec, err := h.uc.Create(r.Context(), schema.Endpoint, payload)
	if err != nil {
		handleError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, rec)
}

func (h *resourceHandler) update(w http.ResponseWriter, r *http.Request) {
	schema, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var payload model.Record
	if err := decodeJSON(w, r, &payload); err != nil {
		handleError(r.Context(), w, err)
		return
	}

	if _, err := h.uc.Update(r.Context(), schema.Endpoint, chi.URLParam(r, "key"), payload); err != nil {
		handleError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

func (h *resourceHandler) delete(w http.ResponseWriter, r *http.Request) {
	schema, ok := h.resolve(w, r)
	if !ok {
		return
	}

	if err := h.uc.Delete(r.Context(), schema.Endpoint, chi.URLParam(r, "key")); err != nil {
		handleError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}
