package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/services"
)

const maxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploads   *services.ObjectStore
}

func newUploadHandler(uploads *services.ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploads:   uploads,
	}
}

// uploadImage stores an image and returns its URL
// @Summary Upload image
// @Description Accepts a multipart image upload (JPEG/PNG/GIF, max 5MB), stores it and returns the public URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string "Public image URL"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing file or unsupported type"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 413 {object} ErrorResponse "Request Entity Too Large"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error storing image"
// @Router /upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploads == nil {
			h.responder.WriteError(w, errs.NewInternalError("upload storage not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(contentType, []string{"image/jpeg", "image/png", "image/gif"}))
			return
		}

		key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), filepath.Ext(header.Filename))
		imageURL, err := h.uploads.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to store uploaded image")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"imageUrl": imageURL})
	}
}
