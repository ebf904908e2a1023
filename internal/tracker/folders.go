package tracker

import (
	"strings"

	"github.com/balkashynov/tally/internal/models"
)

// DefaultPalette is assigned round-robin to new folders.
var DefaultPalette = []string{
	"#7C3AED", // violet
	"#2563EB", // blue
	"#0EA5E9", // sky
	"#10B981", // emerald
	"#84CC16", // lime
	"#F59E0B", // amber
	"#EF4444", // red
	"#EC4899", // pink
}

// CreateFolder adds a folder. Its color depends only on how many folders
// exist, not on the name.
func (t *Tracker) CreateFolder(name string) (models.Folder, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, ErrEmptyName
	}

	folder := models.Folder{
		ID:    t.ids.NewID(),
		Name:  name,
		Color: t.palette[len(t.state.Folders)%len(t.palette)],
	}
	t.state.Folders = append(t.state.Folders, folder)
	t.commit()
	return folder, nil
}

// DeleteFolder removes a folder and unfiles its records. Records are never
// deleted with their folder. An active filter on the folder resets to all.
func (t *Tracker) DeleteFolder(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.folderIndex(id)
	if i < 0 {
		return ErrFolderNotFound
	}
	t.state.Folders = append(t.state.Folders[:i], t.state.Folders[i+1:]...)

	cleared := 0
	for j := range t.state.Archive {
		if t.state.Archive[j].FolderID == id {
			t.state.Archive[j].FolderID = ""
			cleared++
		}
	}
	if t.folderFilter == id {
		t.folderFilter = ""
	}
	t.logger.Debug("deleted folder", "id", id, "records_cleared", cleared)
	t.commit()
	return nil
}

// Folder looks up a folder by id.
func (t *Tracker) Folder(id string) (models.Folder, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.folderIndex(id)
	if i < 0 {
		return models.Folder{}, false
	}
	return t.state.Folders[i], true
}

// SetFolderFilter restricts Search to one folder.
func (t *Tracker) SetFolderFilter(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.folderIndex(id) < 0 {
		return ErrFolderNotFound
	}
	t.folderFilter = id
	return nil
}

// ClearFolderFilter makes Search cover every folder again.
func (t *Tracker) ClearFolderFilter() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.folderFilter = ""
}

// FolderFilter returns the active folder filter, empty for all.
func (t *Tracker) FolderFilter() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.folderFilter
}

func (t *Tracker) folderIndex(id string) int {
	for i, f := range t.state.Folders {
		if f.ID == id {
			return i
		}
	}
	return -1
}
