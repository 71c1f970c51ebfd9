package memory

import (
	"sort"
	"strings"

	models "filetree/internal/domain/models/namespace"
	"filetree/internal/domain/repositories"

	"github.com/google/uuid"
)

// Store is an in-memory NamespaceStore. Folders and files live in two independent
// ID-keyed maps. Parent and folder references are plain IDs, so a move can leave a
// dangling or cyclic reference without affecting memory safety.
//
// Store is not safe for concurrent use; see service/namespace for a locked wrapper.
type Store struct {
	folders map[models.FolderID]*models.Folder
	files   map[models.FileID]*models.File
	newID   func() models.FolderID
}

var _ repositories.NamespaceStore = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{
		folders: make(map[models.FolderID]*models.Folder),
		files:   make(map[models.FileID]*models.File),
		newID:   newFolderID,
	}
}

func newFolderID() models.FolderID {
	return models.FolderID(uuid.NewString())
}

// CreateFolder inserts a folder under parentID. parentID is not validated.
func (s *Store) CreateFolder(name string, parentID *models.FolderID) models.FolderID {
	id := s.newID()
	s.folders[id] = &models.Folder{
		ID:       id,
		Name:     name,
		ParentID: copyID(parentID),
	}
	return id
}

// RenameFolder sets the folder's name. Empty names are accepted.
func (s *Store) RenameFolder(id models.FolderID, name string) bool {
	folder, ok := s.folders[id]
	if !ok {
		return false
	}
	folder.Name = name
	return true
}

// MoveFolder sets the parent of sourceID to targetID.
// The target is not checked, so a move may point at a folder that does not exist
// or introduce a cycle.
func (s *Store) MoveFolder(sourceID, targetID models.FolderID) bool {
	folder, ok := s.folders[sourceID]
	if !ok {
		return false
	}
	folder.ParentID = &targetID
	return true
}

// SearchFolders matches on name substring and exact parent equality.
// A nil rootID matches root folders only; the search is not recursive.
func (s *Store) SearchFolders(substr string, rootID *models.FolderID) []models.Folder {
	results := []models.Folder{}
	for _, folder := range s.folders {
		if strings.Contains(folder.Name, substr) && models.SameFolder(folder.ParentID, rootID) {
			results = append(results, cloneFolder(folder))
		}
	}
	sortFolders(results)
	return results
}

// CreateFile inserts the file if folderID exists. An existing file with the same ID
// is overwritten.
func (s *Store) CreateFile(id models.FileID, name string, folderID models.FolderID) bool {
	if _, ok := s.folders[folderID]; !ok {
		return false
	}
	s.files[id] = &models.File{
		ID:       id,
		Name:     name,
		FolderID: folderID,
	}
	return true
}

// MoveFile moves a file to folderID. Unlike MoveFolder, the destination must exist.
func (s *Store) MoveFile(id models.FileID, folderID models.FolderID) bool {
	file, ok := s.files[id]
	if !ok {
		return false
	}
	if _, ok := s.folders[folderID]; !ok {
		return false
	}
	file.FolderID = folderID
	return true
}

// SearchFiles matches on name substring. With a non-nil rootID only files directly in
// that folder match; a nil rootID matches files in any folder.
func (s *Store) SearchFiles(substr string, rootID *models.FolderID) []models.File {
	results := []models.File{}
	for _, file := range s.files {
		if !strings.Contains(file.Name, substr) {
			continue
		}
		if rootID != nil && file.FolderID != *rootID {
			continue
		}
		results = append(results, *file)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].ID < results[j].ID
	})
	return results
}

// Folder returns a copy of the folder with the given ID
func (s *Store) Folder(id models.FolderID) (models.Folder, bool) {
	folder, ok := s.folders[id]
	if !ok {
		return models.Folder{}, false
	}
	return cloneFolder(folder), true
}

// File returns a copy of the file with the given ID
func (s *Store) File(id models.FileID) (models.File, bool) {
	file, ok := s.files[id]
	if !ok {
		return models.File{}, false
	}
	return *file, true
}

// Folders returns a copy of every folder
func (s *Store) Folders() []models.Folder {
	results := make([]models.Folder, 0, len(s.folders))
	for _, folder := range s.folders {
		results = append(results, cloneFolder(folder))
	}
	sortFolders(results)
	return results
}

func sortFolders(folders []models.Folder) {
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Name != folders[j].Name {
			return folders[i].Name < folders[j].Name
		}
		return folders[i].ID < folders[j].ID
	})
}

func cloneFolder(f *models.Folder) models.Folder {
	out := *f
	out.ParentID = copyID(f.ParentID)
	return out
}

func copyID(id *models.FolderID) *models.FolderID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
