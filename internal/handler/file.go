package handler

import (
	"log/slog"
	"net/http"

	models "filetree/internal/domain/models/namespace"
	"filetree/internal/domain/services"
	"filetree/internal/httputil"
)

// FileHandler handles file HTTP requests
type FileHandler struct {
	namespaceService services.NamespaceService
	logger           *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(namespaceService services.NamespaceService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		namespaceService: namespaceService,
		logger:           logger,
	}
}

// CreateFile creates a file with a caller-chosen ID, overwriting any file with that ID
// POST /api/files
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.namespaceService.CreateFile(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// GetFile retrieves a file by ID
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "File ID is required")
		return
	}

	file, err := h.namespaceService.GetFile(r.Context(), models.FileID(id))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// MoveFile moves a file into an existing folder
// POST /api/files/{id}/move
func (h *FileHandler) MoveFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "File ID is required")
		return
	}

	var req services.MoveFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.namespaceService.MoveFile(r.Context(), models.FileID(id), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// SearchFiles lists files whose name contains q.
// Without root_id, files in every folder match.
// GET /api/files?q=...&root_id=...
func (h *FileHandler) SearchFiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	files, err := h.namespaceService.SearchFiles(r.Context(), query.Get("q"), models.FolderIDPtr(query.Get("root_id")))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}
