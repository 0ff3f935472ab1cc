package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/pdf-summarizer/internal/models"
	"github.com/BerylCAtieno/pdf-summarizer/internal/services"
	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

type SummaryHandler struct {
	service     services.SummaryService
	maxFileSize int64
	logger      *utils.Logger
}

func NewSummaryHandler(service services.SummaryService, maxFileSize int64, logger *utils.Logger) *SummaryHandler {
	return &SummaryHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	// Check Content-Length header first to reject oversized requests early
	if r.ContentLength > h.maxFileSize {
		h.respondError(w, utils.NewBadRequestError(h.sizeLimitMessage()))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr), strings.Contains(err.Error(), "request body too large"):
			h.respondError(w, utils.NewBadRequestError(h.sizeLimitMessage()))
		case errors.Is(err, http.ErrNotMultipart):
			h.respondError(w, utils.NewBadRequestError("No file uploaded"))
		default:
			h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		h.respondError(w, utils.NewBadRequestError("Only PDF files are supported"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, utils.NewInternalError("Failed to read file"))
		return
	}

	if len(data) == 0 {
		h.respondError(w, utils.NewBadRequestError("Uploaded file is empty"))
		return
	}

	h.logger.Info("File upload accepted",
		"filename", header.Filename,
		"size", len(data),
		"length", r.FormValue("length"))

	req := &models.SummaryRequest{
		File:     data,
		Filename: header.Filename,
		Length:   r.FormValue("length"),
	}

	resp, err := h.service.Summarize(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *SummaryHandler) sizeLimitMessage() string {
	return fmt.Sprintf("File size exceeds %dMB limit", h.maxFileSize>>20)
}

func (h *SummaryHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, h.logger, status, data)
}

func (h *SummaryHandler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if appErr, ok := utils.AsAppError(err); ok {
		status = appErr.StatusCode
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request error", "status", status, "error", err)
	} else {
		h.logger.Warn("Request rejected", "status", status, "error", message)
	}

	respondJSON(w, h.logger, status, map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, logger *utils.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}
