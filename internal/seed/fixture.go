package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"filetree/internal/domain"
	models "filetree/internal/domain/models/namespace"
	"filetree/internal/domain/repositories"

	"gopkg.in/yaml.v3"
)

// Fixture describes a folder tree to load into a store.
//
//	folders:
//	  - name: docs
//	    files:
//	      - id: f1
//	        name: readme
//	    folders:
//	      - name: docs-sub
type Fixture struct {
	Folders []FolderFixture `yaml:"folders"`
}

// FolderFixture is one folder with its files and subfolders
type FolderFixture struct {
	Name    string          `yaml:"name"`
	Files   []FileFixture   `yaml:"files,omitempty"`
	Folders []FolderFixture `yaml:"folders,omitempty"`
}

// FileFixture is a file with a caller-chosen ID
type FileFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Result reports what Apply created
type Result struct {
	Folders int
	Files   int
	// RootIDs are the generated IDs of the top-level fixture folders, in fixture order
	RootIDs []models.FolderID
}

// Parse decodes a YAML fixture and validates it
func Parse(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// LoadFile reads and parses a YAML fixture file
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks that every file has an ID
func (fx *Fixture) Validate() error {
	var walk func(path string, folders []FolderFixture) error
	walk = func(path string, folders []FolderFixture) error {
		for _, folder := range folders {
			p := path + "/" + folder.Name
			for _, file := range folder.Files {
				if file.ID == "" {
					return &domain.ValidationError{
						Message: fmt.Sprintf("file %q in %s has no id", file.Name, p),
					}
				}
			}
			if err := walk(p, folder.Folders); err != nil {
				return err
			}
		}
		return nil
	}
	return walk("", fx.Folders)
}

// FixtureSeeder applies fixtures to a namespace store
type FixtureSeeder struct {
	store  repositories.NamespaceStore
	logger *slog.Logger
}

// NewFixtureSeeder creates a new fixture seeder
func NewFixtureSeeder(store repositories.NamespaceStore, logger *slog.Logger) *FixtureSeeder {
	return &FixtureSeeder{
		store:  store,
		logger: logger,
	}
}

// Apply creates the fixture's folders depth-first, then each folder's files.
// Folder IDs are generated by the store. The fixture is validated before anything
// is written, so a rejected fixture leaves the store untouched.
func (s *FixtureSeeder) Apply(ctx context.Context, fx *Fixture) (*Result, error) {
	if err := fx.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, folder := range fx.Folders {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		id, err := s.applyFolder(folder, nil, result)
		if err != nil {
			return result, err
		}
		result.RootIDs = append(result.RootIDs, id)
	}

	s.logger.Info("fixture applied",
		"folders", result.Folders,
		"files", result.Files,
	)
	return result, nil
}

func (s *FixtureSeeder) applyFolder(folder FolderFixture, parentID *models.FolderID, result *Result) (models.FolderID, error) {
	id := s.store.CreateFolder(folder.Name, parentID)
	result.Folders++
	s.logger.Debug("seeded folder", "id", id, "name", folder.Name)

	for _, file := range folder.Files {
		if !s.store.CreateFile(models.FileID(file.ID), file.Name, id) {
			return id, fmt.Errorf("create file %q: %w", file.ID, domain.ErrNotFound)
		}
		result.Files++
	}

	for _, child := range folder.Folders {
		if _, err := s.applyFolder(child, &id, result); err != nil {
			return id, err
		}
	}
	return id, nil
}
