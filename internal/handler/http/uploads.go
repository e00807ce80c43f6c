package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

const (
	uploadFormField = "files"

	// multipartMemory is how much of a multipart body is kept in memory
	// before spilling file parts to disk.
	multipartMemory = 8 << 20

	// multipartOverhead covers part headers and boundaries on top of the
	// file contents.
	multipartOverhead = 1 << 20
)

// uploadFiles registers every part of the `files` field. Files are checked
// independently: 201 when all were registered, 207 when some failed and 422
// when none made it.
func (h *Handler) uploadFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payloads, err := h.readMultipartPayloads(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	results := h.services.UploadService.RegisterBatch(ctx, payloads...)

	response := models.UploadBatchResponse{Results: results}
	for _, result := range results {
		if result.OK() {
			response.Succeeded++
		} else {
			response.Failed++
		}
	}

	log.Info().
		Int("succeeded", response.Succeeded).
		Int("failed", response.Failed).
		Msg("upload batch processed")

	utils.WriteJSON(w, response, batchStatus(response))
}

func batchStatus(response models.UploadBatchResponse) int {
	switch {
	case response.Failed == 0:
		return http.StatusCreated
	case response.Succeeded == 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusMultiStatus
	}
}

func (h *Handler) readMultipartPayloads(w http.ResponseWriter, r *http.Request) ([]models.UploadPayload, error) {
	limit := int64(h.upload.MaxFiles)*h.upload.MaxFileSize + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrRequestTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadFormField]
	if len(headers) == 0 {
		return nil, ErrNoFiles
	}
	if h.upload.MaxFiles > 0 && len(headers) > h.upload.MaxFiles {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(headers), h.upload.MaxFiles)
	}

	payloads := make([]models.UploadPayload, 0, len(headers))
	for _, header := range headers {
		content, err := readPart(header)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
		}

		payloads = append(payloads, models.UploadPayload{
			Bytes:             content,
			Filename:          header.Filename,
			DeclaredSize:      header.Size,
			DeclaredMediaType: header.Header.Get("Content-Type"),
		})
	}

	return payloads, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func (h *Handler) getUpload(w http.ResponseWriter, r *http.Request) {
	upload, err := h.services.UploadService.GetUpload(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}

// getUploadContent serves the decoded payload bytes.
func (h *Handler) getUploadContent(w http.ResponseWriter, r *http.Request) {
	upload, err := h.services.UploadService.GetUpload(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	content, err := upload.Content()
	if err != nil {
		writeError(w, r, fmt.Errorf("error decoding upload %s: %w", upload.ID, err))
		return
	}

	w.Header().Set("Content-Type", upload.MediaType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
