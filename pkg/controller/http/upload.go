package http

import (
	"net/http"

	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/safe"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

const maxUploadSize = 32 << 20

func uploadHandler(uc *usecase.UploadUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			handleError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidInput, "multipart field \"file\" is required", goerr.V("reason", err.Error())))
			return
		}
		defer safe.Close(r.Context(), file)

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		result, err := uc.Upload(r.Context(), header.Filename, contentType, file)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, result)
	}
}

func uploadServeHandler(uc *usecase.UploadUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, contentType, err := uc.Open(r.Context(), chi.URLParam(r, "filename"))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		defer safe.Close(r.Context(), rc)

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		safe.Copy(r.Context(), w, rc)
	}
}
