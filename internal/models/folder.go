package models

// Folder is a user-defined bucket for archived records.
// Names are not unique; Color is a display tag picked at creation.
type Folder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
