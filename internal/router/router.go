package router

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/BerylCAtieno/pdf-summarizer/internal/handlers"
	"github.com/BerylCAtieno/pdf-summarizer/internal/middleware"
	"github.com/BerylCAtieno/pdf-summarizer/internal/services"
	"github.com/BerylCAtieno/pdf-summarizer/internal/utils"

	"github.com/gorilla/mux"
)

// Assets are the page template and static files served next to the API.
type Assets struct {
	Templates *template.Template
	Static    fs.FS
}

func NewRouter(summaryService services.SummaryService, maxFileSize int64, assets Assets, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	summaryHandler := handlers.NewSummaryHandler(summaryService, maxFileSize, logger)
	pageHandler := handlers.NewPageHandler(assets.Templates, logger)

	// Health check
	r.HandleFunc("/health", pageHandler.Health).Methods(http.MethodGet)

	// Upload page
	r.HandleFunc("/", pageHandler.Index).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(assets.Static))),
	).Methods(http.MethodGet)

	// Summarization
	r.HandleFunc("/summarize", summaryHandler.Summarize).Methods(http.MethodPost, http.MethodOptions)

	return r
}
