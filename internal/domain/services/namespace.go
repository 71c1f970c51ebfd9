package services

import (
	"context"

	models "filetree/internal/domain/models/namespace"
)

// NamespaceService exposes the namespace store to concurrent callers.
// Failed store operations are reported as domain errors instead of booleans.
type NamespaceService interface {
	// CreateFolder creates a folder. ParentID is not required to exist.
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder by ID
	GetFolder(ctx context.Context, id models.FolderID) (*models.Folder, error)

	// RenameFolder changes a folder's name
	RenameFolder(ctx context.Context, id models.FolderID, req *RenameFolderRequest) (*models.Folder, error)

	// MoveFolder reparents a folder. The target is not required to exist.
	MoveFolder(ctx context.Context, id models.FolderID, req *MoveFolderRequest) (*models.Folder, error)

	// SearchFolders searches one level of the tree (nil root = top level)
	SearchFolders(ctx context.Context, query string, rootID *models.FolderID) ([]models.Folder, error)

	// CreateFile creates or overwrites a file in an existing folder
	CreateFile(ctx context.Context, req *CreateFileRequest) (*models.File, error)

	// GetFile retrieves a file by ID
	GetFile(ctx context.Context, id models.FileID) (*models.File, error)

	// MoveFile moves a file into an existing folder
	MoveFile(ctx context.Context, id models.FileID, req *MoveFileRequest) (*models.File, error)

	// SearchFiles searches files by name (nil root = every folder)
	SearchFiles(ctx context.Context, query string, rootID *models.FolderID) ([]models.File, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string           `json:"name"`
	ParentID *models.FolderID `json:"parent_id,omitempty"` // null for root
}

// RenameFolderRequest represents a folder rename request
type RenameFolderRequest struct {
	Name string `json:"name"`
}

// MoveFolderRequest represents a folder move request
type MoveFolderRequest struct {
	TargetID models.FolderID `json:"target_id"`
}

// CreateFileRequest represents a file creation request. The caller picks the ID.
type CreateFileRequest struct {
	ID       models.FileID   `json:"id"`
	Name     string          `json:"name"`
	FolderID models.FolderID `json:"folder_id"`
}

// MoveFileRequest represents a file move request
type MoveFileRequest struct {
	FolderID models.FolderID `json:"folder_id"`
}
