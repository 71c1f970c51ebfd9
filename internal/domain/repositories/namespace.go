package repositories

import (
	models "filetree/internal/domain/models/namespace"
)

// NamespaceStore holds folders and files and the operations that read and mutate them.
// Mutations report failure with a false result and leave state unchanged.
type NamespaceStore interface {
	// CreateFolder creates a folder under parentID (nil = root) and returns its generated ID.
	// parentID is not required to exist.
	CreateFolder(name string, parentID *models.FolderID) models.FolderID

	// RenameFolder replaces a folder's name
	RenameFolder(id models.FolderID, name string) bool

	// MoveFolder reparents a folder under targetID. Only the source must exist.
	MoveFolder(sourceID, targetID models.FolderID) bool

	// SearchFolders returns folders whose name contains substr and whose parent is exactly rootID
	SearchFolders(substr string, rootID *models.FolderID) []models.Folder

	// CreateFile creates or overwrites a file. The folder must exist.
	CreateFile(id models.FileID, name string, folderID models.FolderID) bool

	// MoveFile moves a file into folderID. Both the file and the folder must exist.
	MoveFile(id models.FileID, folderID models.FolderID) bool

	// SearchFiles returns files whose name contains substr.
	// A nil rootID matches files in every folder.
	SearchFiles(substr string, rootID *models.FolderID) []models.File

	// Folder looks up a folder by ID
	Folder(id models.FolderID) (models.Folder, bool)

	// File looks up a file by ID
	File(id models.FileID) (models.File, bool)

	// Folders returns every folder
	Folders() []models.Folder
}
