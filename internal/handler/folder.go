package handler

import (
	"log/slog"
	"net/http"

	models "filetree/internal/domain/models/namespace"
	"filetree/internal/domain/services"
	"filetree/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	namespaceService services.NamespaceService
	logger           *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(namespaceService services.NamespaceService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		namespaceService: namespaceService,
		logger:           logger,
	}
}

// renameFolderBody distinguishes a missing name from an empty one
type renameFolderBody struct {
	Name httputil.OptionalString `json:"name"`
}

// CreateFolder creates a new folder
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.namespaceService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// GetFolder retrieves a folder by ID
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	folder, err := h.namespaceService.GetFolder(r.Context(), models.FolderID(id))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// RenameFolder renames a folder. An empty name is allowed; a missing one is not.
// PATCH /api/folders/{id}
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	var body renameFolderBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !body.Name.IsSet() {
		httputil.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}

	folder, err := h.namespaceService.RenameFolder(r.Context(), models.FolderID(id), &services.RenameFolderRequest{
		Name: *body.Name.Value,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// MoveFolder reparents a folder. The target folder is not required to exist.
// POST /api/folders/{id}/move
func (h *FolderHandler) MoveFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	var req services.MoveFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.namespaceService.MoveFolder(r.Context(), models.FolderID(id), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// SearchFolders lists folders on one level whose name contains q.
// Without root_id only top-level folders match.
// GET /api/folders?q=...&root_id=...
func (h *FolderHandler) SearchFolders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	folders, err := h.namespaceService.SearchFolders(r.Context(), query.Get("q"), models.FolderIDPtr(query.Get("root_id")))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}
