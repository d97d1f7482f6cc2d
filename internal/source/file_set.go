package source

import (
	"fmt"

	"fortio.org/safecast"
)

// FileSet maps FileIDs to file paths for one compiler invocation.
type FileSet struct {
	names []string
	index map[string]FileID
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		names: make([]string, 0, 4),
		index: make(map[string]FileID),
	}
}

// Add registers a path and returns its FileID. Adding the same path twice
// returns the original ID.
func (fs *FileSet) Add(path string) FileID {
	if id, ok := fs.index[path]; ok {
		return id
	}
	next, err := safecast.Conv[uint16](len(fs.names) + 1)
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(next)
	fs.names = append(fs.names, path)
	fs.index[path] = id
	return id
}

// Name returns the path registered for id, or "" for an unknown ID.
func (fs *FileSet) Name(id FileID) string {
	if !id.IsValid() || int(id) > len(fs.names) {
		return ""
	}
	return fs.names[id-1]
}

// Len returns the number of registered files.
func (fs *FileSet) Len() int { return len(fs.names) }
