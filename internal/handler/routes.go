package handler

import "net/http"

// RegisterRoutes mounts the namespace API on mux (Go 1.22+ method patterns)
func RegisterRoutes(mux *http.ServeMux, folders *FolderHandler, files *FileHandler) {
	mux.HandleFunc("GET /health", HealthCheck)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folders.SearchFolders)
	mux.HandleFunc("POST /api/folders", folders.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", folders.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folders.RenameFolder)
	mux.HandleFunc("POST /api/folders/{id}/move", folders.MoveFolder)

	// File routes
	mux.HandleFunc("GET /api/files", files.SearchFiles)
	mux.HandleFunc("POST /api/files", files.CreateFile)
	mux.HandleFunc("GET /api/files/{id}", files.GetFile)
	mux.HandleFunc("POST /api/files/{id}/move", files.MoveFile)
}
