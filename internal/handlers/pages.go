package handlers

import (
	"html/template"
	"net/http"

	"github.com/BerylCAtieno/pdf-summarizer/internal/models"
	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"
)

type indexData struct {
	Title         string
	Lengths       []string
	DefaultLength string
}

type PageHandler struct {
	templates *template.Template
	logger    *utils.Logger
}

func NewPageHandler(templates *template.Template, logger *utils.Logger) *PageHandler {
	return &PageHandler{
		templates: templates,
		logger:    logger,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Title:         "PDF Summarizer",
		Lengths:       []string{models.LengthShort, models.LengthMedium, models.LengthLong},
		DefaultLength: models.LengthMedium,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("Failed to render index page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
