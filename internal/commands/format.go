package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/balkashynov/tally/internal/models"
	"github.com/balkashynov/tally/internal/tracker"
	"github.com/balkashynov/tally/internal/tui"
)

// pickStopwatch resolves ref against the running stopwatches. With no ref it
// picks the only stopwatch, if there is exactly one.
func pickStopwatch(tr *tracker.Tracker, ref string) (models.Stopwatch, error) {
	sws := tr.Stopwatches()
	if ref == "" {
		switch len(sws) {
		case 0:
			return models.Stopwatch{}, fmt.Errorf("no stopwatches are running")
		case 1:
			return sws[0], nil
		default:
			return models.Stopwatch{}, fmt.Errorf("%d stopwatches are running, pass an id (see 'tally status')", len(sws))
		}
	}

	ids := make([]string, len(sws))
	for i, sw := range sws {
		ids[i] = sw.ID
	}
	id, err := tracker.ResolveID(ref, ids, tracker.ErrStopwatchNotFound)
	if err != nil {
		return models.Stopwatch{}, err
	}
	sw, _ := tr.Stopwatch(id)
	return sw, nil
}

// pickRecord resolves ref against records.
func pickRecord(records []models.TimeRecord, ref string) (models.TimeRecord, error) {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	id, err := tracker.ResolveID(ref, ids, tracker.ErrRecordNotFound)
	if err != nil {
		return models.TimeRecord{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.TimeRecord{}, tracker.ErrRecordNotFound
}

func folderNames(folders []models.Folder) map[string]string {
	names := make(map[string]string, len(folders))
	for _, f := range folders {
		names[f.ID] = f.Name
	}
	return names
}

// formatRecord renders one archive or inbox line.
func formatRecord(r models.TimeRecord, folders map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %6s", tui.ShortID(r.ID), r.EndedAt.Format("2006-01-02 15:04"), tui.FormatDuration(r.Duration))

	name := r.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "  %s", name)
	if r.Category != "" {
		fmt.Fprintf(&b, "  [%s]", r.Category)
	}
	if f, ok := folders[r.FolderID]; ok {
		fmt.Fprintf(&b, "  📁 %s", f)
	}
	if r.Manual {
		b.WriteString("  ✍️")
	}
	if r.Summary != "" {
		fmt.Fprintf(&b, "\n          %s", r.Summary)
	}
	return b.String()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
