package namespace

type Folder struct {
	ID       FolderID  `json:"id"`
	Name     string    `json:"name"`
	ParentID *FolderID `json:"parent_id"` // nil = root level
}

// IsRoot reports whether the folder has no parent
func (f Folder) IsRoot() bool {
	return f.ParentID == nil
}
