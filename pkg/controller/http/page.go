package http

import (
	"net/http"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func pagesListHandler(uc *usecase.PageUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := uc.List(r.Context())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		if pages == nil {
			pages = []*model.Page{}
		}
		writeJSON(r.Context(), w, http.StatusOK, pages)
	}
}

func pageGetHandler(uc *usecase.PageUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := uc.Get(r.Context(), chi.URLParam(r, "pageID"))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, page)
	}
}

func pageSaveHandler(uc *usecase.PageUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var page model.Page
		if err := decodeJSON(w, r, &page); err != nil {
			handleError(r.Context(), w, err)
			return
		}

		if err := uc.Save(r.Context(), &page); err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}
