package namespace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"filetree/internal/config"
	"filetree/internal/domain"
	models "filetree/internal/domain/models/namespace"
	"filetree/internal/domain/repositories"
	"filetree/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// namespaceService serializes access to a NamespaceStore. Mutations hold the write
// lock for their whole duration so both collections change as a unit.
type namespaceService struct {
	mu     sync.RWMutex
	store  repositories.NamespaceStore
	logger *slog.Logger
}

// NewNamespaceService creates a new namespace service
func NewNamespaceService(store repositories.NamespaceStore, logger *slog.Logger) services.NamespaceService {
	return &namespaceService{
		store:  store,
		logger: logger,
	}
}

// CreateFolder creates a folder under req.ParentID (nil = root).
// The parent is not checked for existence.
func (s *namespaceService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	if err := validateCreateFolderRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	id := s.store.CreateFolder(req.Name, req.ParentID)
	folder, _ := s.store.Folder(id)
	s.mu.Unlock()

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return &folder, nil
}

// GetFolder retrieves a folder by ID
func (s *namespaceService) GetFolder(ctx context.Context, id models.FolderID) (*models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	folder, ok := s.store.Folder(id)
	s.mu.RUnlock()

	if !ok {
		return nil, &domain.NotFoundError{ResourceType: "folder", ResourceID: id.String()}
	}
	return &folder, nil
}

// RenameFolder changes a folder's name. Empty names are accepted.
func (s *namespaceService) RenameFolder(ctx context.Context, id models.FolderID, req *services.RenameFolderRequest) (*models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateRenameFolderRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	ok := s.store.RenameFolder(id, req.Name)
	folder, _ := s.store.Folder(id)
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("rename of unknown folder", "id", id)
		return nil, &domain.NotFoundError{ResourceType: "folder", ResourceID: id.String()}
	}

	s.logger.Info("folder renamed", "id", id, "name", folder.Name)
	return &folder, nil
}

// MoveFolder reparents a folder under req.TargetID. Only the source folder must exist;
// the target may be unknown, leaving a dangling parent reference.
func (s *namespaceService) MoveFolder(ctx context.Context, id models.FolderID, req *services.MoveFolderRequest) (*models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateMoveFolderRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	ok := s.store.MoveFolder(id, req.TargetID)
	folder, _ := s.store.Folder(id)
	_, targetKnown := s.store.Folder(req.TargetID)
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("move of unknown folder", "id", id, "target_id", req.TargetID)
		return nil, &domain.NotFoundError{ResourceType: "folder", ResourceID: id.String()}
	}

	if !targetKnown {
		s.logger.Warn("folder moved under unknown parent",
			"id", id,
			"target_id", req.TargetID,
		)
	}
	s.logger.Info("folder moved", "id", id, "parent_id", folder.ParentID)
	return &folder, nil
}

// SearchFolders returns folders on one level whose name contains query
func (s *namespaceService) SearchFolders(ctx context.Context, query string, rootID *models.FolderID) ([]models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.SearchFolders(query, rootID), nil
}

// CreateFile creates or overwrites a file. The folder must exist.
func (s *namespaceService) CreateFile(ctx context.Context, req *services.CreateFileRequest) (*models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateCreateFileRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	_, existed := s.store.File(req.ID)
	ok := s.store.CreateFile(req.ID, req.Name, req.FolderID)
	file, _ := s.store.File(req.ID)
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("file create in unknown folder", "id", req.ID, "folder_id", req.FolderID)
		return nil, &domain.NotFoundError{ResourceType: "folder", ResourceID: req.FolderID.String()}
	}

	s.logger.Info("file created",
		"id", file.ID,
		"name", file.Name,
		"folder_id", file.FolderID,
		"overwritten", existed,
	)
	return &file, nil
}

// GetFile retrieves a file by ID
func (s *namespaceService) GetFile(ctx context.Context, id models.FileID) (*models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	file, ok := s.store.File(id)
	s.mu.RUnlock()

	if !ok {
		return nil, &domain.NotFoundError{ResourceType: "file", ResourceID: id.String()}
	}
	return &file, nil
}

// MoveFile moves a file into an existing folder
func (s *namespaceService) MoveFile(ctx context.Context, id models.FileID, req *services.MoveFileRequest) (*models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateMoveFileRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	ok := s.store.MoveFile(id, req.FolderID)
	file, fileKnown := s.store.File(id)
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("file move failed", "id", id, "folder_id", req.FolderID)
		// The store does not say which side was missing
		if !fileKnown {
			return nil, &domain.NotFoundError{ResourceType: "file", ResourceID: id.String()}
		}
		return nil, &domain.NotFoundError{ResourceType: "folder", ResourceID: req.FolderID.String()}
	}

	s.logger.Info("file moved", "id", id, "folder_id", file.FolderID)
	return &file, nil
}

// SearchFiles returns files whose name contains query. A nil root searches every folder.
func (s *namespaceService) SearchFiles(ctx context.Context, query string, rootID *models.FolderID) ([]models.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.SearchFiles(query, rootID), nil
}

func validateCreateFolderRequest(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.RuneLength(0, config.MaxFolderNameLength)),
		validation.Field(&req.ParentID, validation.NilOrNotEmpty, validation.RuneLength(0, config.MaxIDLength)),
	)
}

func validateRenameFolderRequest(req *services.RenameFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.RuneLength(0, config.MaxFolderNameLength)),
	)
}

func validateMoveFolderRequest(req *services.MoveFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.TargetID, validation.Required, validation.RuneLength(1, config.MaxIDLength)),
	)
}

func validateCreateFileRequest(req *services.CreateFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ID, validation.Required, validation.RuneLength(1, config.MaxIDLength)),
		validation.Field(&req.Name, validation.RuneLength(0, config.MaxFileNameLength)),
		validation.Field(&req.FolderID, validation.Required, validation.RuneLength(1, config.MaxIDLength)),
	)
}

func validateMoveFileRequest(req *services.MoveFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FolderID, validation.Required, validation.RuneLength(1, config.MaxIDLength)),
	)
}
