package namespace

// FolderID identifies a folder. Generated by the store, never by callers.
type FolderID string

// FileID identifies a file. Supplied by the caller when the file is created.
type FileID string

func (id FolderID) String() string { return string(id) }
func (id FileID) String() string   { return string(id) }

// FolderIDPtr returns a pointer to id, or nil if id is empty.
// Handy for turning an optional query parameter into a search root.
func FolderIDPtr(id string) *FolderID {
	if id == "" {
		return nil
	}
	f := FolderID(id)
	return &f
}

// SameFolder reports whether two optional folder references are equal.
// Two nil references are equal (both mean "root").
func SameFolder(a, b *FolderID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
