package namespace

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"filetree/internal/domain"
	models "filetree/internal/domain/models/namespace"
	"filetree/internal/domain/services"
	"filetree/internal/repository/memory"
)

func newTestService() services.NamespaceService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNamespaceService(memory.New(), logger)
}

func mustCreateFolder(t *testing.T, svc services.NamespaceService, name string, parent *models.FolderID) *models.Folder {
	t.Helper()
	folder, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{Name: name, ParentID: parent})
	if err != nil {
		t.Fatalf("CreateFolder(%q): %v", name, err)
	}
	return folder
}

func TestCreateFolder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("empty parent normalizes to root", func(t *testing.T) {
		empty := models.FolderID("")
		folder, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Name: "docs", ParentID: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !folder.IsRoot() {
			t.Errorf("ParentID = %v, want nil", folder.ParentID)
		}
	})

	t.Run("unknown parent accepted", func(t *testing.T) {
		parent := models.FolderID("ghost")
		folder, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Name: "x", ParentID: &parent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *folder.ParentID != "ghost" {
			t.Errorf("ParentID = %s, want ghost", *folder.ParentID)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Name: strings.Repeat("a", 256)})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})
}

func TestRenameFolder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	folder := mustCreateFolder(t, svc, "old", nil)

	renamed, err := svc.RenameFolder(ctx, folder.ID, &services.RenameFolderRequest{Name: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.Name != "new" {
		t.Errorf("Name = %q, want new", renamed.Name)
	}

	_, err = svc.RenameFolder(ctx, "missing", &services.RenameFolderRequest{Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMoveFolder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	a := mustCreateFolder(t, svc, "a", nil)
	b := mustCreateFolder(t, svc, "b", nil)

	tests := []struct {
		name    string
		source  models.FolderID
		target  models.FolderID
		wantErr error
	}{
		{name: "known target", source: b.ID, target: a.ID},
		{name: "unknown target succeeds", source: b.ID, target: "nowhere"},
		{name: "unknown source", source: "missing", target: a.ID, wantErr: domain.ErrNotFound},
		{name: "empty target", source: b.ID, target: "", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder, err := svc.MoveFolder(ctx, tt.source, &services.MoveFolderRequest{TargetID: tt.target})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if folder.ParentID == nil || *folder.ParentID != tt.target {
				t.Errorf("ParentID = %v, want %s", folder.ParentID, tt.target)
			}
		})
	}
}

func TestCreateAndMoveFile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	a := mustCreateFolder(t, svc, "a", nil)
	b := mustCreateFolder(t, svc, "b", nil)

	if _, err := svc.CreateFile(ctx, &services.CreateFileRequest{ID: "f1", Name: "readme", FolderID: a.ID}); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}

	t.Run("create in unknown folder", func(t *testing.T) {
		_, err := svc.CreateFile(ctx, &services.CreateFileRequest{ID: "f1", Name: "other", FolderID: "nonexistent"})
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) || nf.ResourceType != "folder" {
			t.Fatalf("err = %v, want folder NotFoundError", err)
		}
		file, _ := svc.GetFile(ctx, "f1")
		if file.Name != "readme" {
			t.Errorf("Name = %q, want readme", file.Name)
		}
	})

	t.Run("missing id rejected", func(t *testing.T) {
		_, err := svc.CreateFile(ctx, &services.CreateFileRequest{Name: "x", FolderID: a.ID})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("move to unknown folder", func(t *testing.T) {
		_, err := svc.MoveFile(ctx, "f1", &services.MoveFileRequest{FolderID: "bogus-id"})
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) || nf.ResourceType != "folder" {
			t.Fatalf("err = %v, want folder NotFoundError", err)
		}
	})

	t.Run("move unknown file", func(t *testing.T) {
		_, err := svc.MoveFile(ctx, "nope", &services.MoveFileRequest{FolderID: b.ID})
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) || nf.ResourceType != "file" {
			t.Fatalf("err = %v, want file NotFoundError", err)
		}
	})

	t.Run("valid move", func(t *testing.T) {
		file, err := svc.MoveFile(ctx, "f1", &services.MoveFileRequest{FolderID: b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if file.FolderID != b.ID {
			t.Errorf("FolderID = %s, want %s", file.FolderID, b.ID)
		}
	})
}

func TestSearch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	a := mustCreateFolder(t, svc, "docs", nil)
	mustCreateFolder(t, svc, "docs-sub", &a.ID)
	svc.CreateFile(ctx, &services.CreateFileRequest{ID: "f1", Name: "notes", FolderID: a.ID})

	folders, err := svc.SearchFolders(ctx, "docs", nil)
	if err != nil || len(folders) != 1 || folders[0].ID != a.ID {
		t.Errorf("SearchFolders(nil) = %v, %v; want only %s", folders, err, a.ID)
	}

	files, err := svc.SearchFiles(ctx, "note", nil)
	if err != nil || len(files) != 1 {
		t.Errorf("SearchFiles(nil) = %v, %v; want 1 file", files, err)
	}
}

func TestCanceledContext(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{Name: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("CreateFolder err = %v, want context.Canceled", err)
	}
	if _, err := svc.SearchFiles(ctx, "", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("SearchFiles err = %v, want context.Canceled", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	root := mustCreateFolder(t, svc, "root", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			svc.CreateFolder(ctx, &services.CreateFolderRequest{Name: "child", ParentID: &root.ID})
		}()
		go func() {
			defer wg.Done()
			svc.SearchFolders(ctx, "child", &root.ID)
		}()
	}
	wg.Wait()

	children, _ := svc.SearchFolders(ctx, "child", &root.ID)
	if len(children) != 50 {
		t.Errorf("got %d children, want 50", len(children))
	}
}
