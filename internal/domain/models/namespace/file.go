package namespace

type File struct {
	ID       FileID   `json:"id"`
	Name     string   `json:"name"`
	FolderID FolderID `json:"folder_id"` // must name a folder that existed when the file was created
}
