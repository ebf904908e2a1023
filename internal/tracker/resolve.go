package tracker

import (
	"fmt"
	"strings"

	"github.com/balkashynov/tally/internal/models"
)

// ResolveID expands ref to the single id in ids that equals it or starts
// with it. notFound is returned when nothing matches.
func ResolveID(ref string, ids []string, notFound error) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", notFound
	}

	var matches []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", notFound
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: '%s' matches %d items", ErrAmbiguousID, ref, len(matches))
	}
}

// FindFolder resolves a folder by id, id prefix or case-insensitive name.
func (t *Tracker) FindFolder(ref string) (models.Folder, error) {
	folders := t.Folders()

	var byName []models.Folder
	for _, f := range folders {
		if strings.EqualFold(f.Name, strings.TrimSpace(ref)) {
			byName = append(byName, f)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return models.Folder{}, fmt.Errorf("%w: %d folders are named '%s'", ErrAmbiguousID, len(byName), ref)
	}

	ids := make([]string, 0, len(folders))
	for _, f := range folders {
		ids = append(ids, f.ID)
	}
	id, err := ResolveID(ref, ids, ErrFolderNotFound)
	if err != nil {
		return models.Folder{}, err
	}
	for _, f := range folders {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Folder{}, ErrFolderNotFound
}
