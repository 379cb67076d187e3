package domain

import (
	"sort"
	"time"

	"go.trai.ch/zerr"
)

// FileEntry describes one regular file found at the top level of the scanned directory.
type FileEntry struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Hash     string    `json:"hash,omitempty"`
}

// WorkspaceIndex is the manifest written for a scanned directory.
type WorkspaceIndex struct {
	ProjectName string      `json:"project_name"`
	Root        string      `json:"root"`
	GeneratedAt time.Time   `json:"generated_at"`
	LastCommit  string      `json:"last_commit"`
	Files       []FileEntry `json:"files"`
}

// NewWorkspaceIndex assembles a manifest from the enumerated entries.
// Entries keep their order unless sorted is set, in which case they are ordered by name.
// A nil entry slice becomes an empty one so the manifest always carries a list.
func NewWorkspaceIndex(
	project, root, commit string,
	generatedAt time.Time,
	entries []FileEntry,
	sorted bool,
) (*WorkspaceIndex, error) {
	seen := make(map[string]struct{}, len(entries))
	files := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			return nil, zerr.With(ErrDuplicateEntry, "name", e.Name)
		}
		seen[e.Name] = struct{}{}
		files = append(files, e)
	}

	if sorted {
		sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	}

	return &WorkspaceIndex{
		ProjectName: project,
		Root:        root,
		GeneratedAt: generatedAt,
		LastCommit:  NormalizeCommit(commit),
		Files:       files,
	}, nil
}

// Names returns the file names in manifest order.
func (w *WorkspaceIndex) Names() []string {
	names := make([]string, len(w.Files))
	for i, f := range w.Files {
		names[i] = f.Name
	}
	return names
}

// ScanOptions controls which entries the enumerator reports.
type ScanOptions struct {
	// Hash computes a content hash for every entry.
	Hash bool
	// Hidden includes entries whose name starts with a dot.
	Hidden bool
	// Ignore holds filepath.Match patterns matched against entry names.
	Ignore []string
}
