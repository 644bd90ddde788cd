package source

import (
	"crypto/sha256"
	"os"
	"path/filepath"
)

// FileSet owns a collection of source files and allocates FileIDs.
// IDs start at 1; ID 0 is reserved so the zero Location stays invalid.
type FileSet struct {
	files []*File
	index map[string]FileID
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]*File, 0, 4),
		index: make(map[string]FileID),
	}
}

// Add registers content under the given path and returns its new ID.
// Registering the same path again creates a fresh file; the path index
// always points at the latest version.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalized := normalizePath(path)
	id := FileID(len(fs.files) + 1)
	fs.files = append(fs.files, &File{
		ID:         id,
		Path:       normalized,
		Content:    content,
		lineStarts: buildLineStarts(content),
		Hash:       sha256.Sum256(content),
		Flags:      flags,
	})
	fs.index[normalized] = id
	return id
}

// Load reads a file from disk and registers its raw bytes.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the caller
	if err != nil {
		return 0, err
	}
	return fs.Add(path, content, 0), nil
}

// AddVirtual registers in-memory content (stdin, tests) under a name.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for id, or nil for an unknown or reserved ID.
func (fs *FileSet) Get(id FileID) *File {
	if id == 0 || int(id) > len(fs.files) {
		return nil
	}
	return fs.files[id-1]
}

// GetByPath returns the latest file registered under path.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fs.index[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return fs.files[id-1], true
}

// Len returns the number of registered files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Resolve converts a location into its file and 1-based line/column.
// Invalid or unknown locations yield (nil, LineCol{}).
func (fs *FileSet) Resolve(loc Location) (*File, LineCol) {
	f := fs.Get(loc.File)
	if f == nil {
		return nil, LineCol{}
	}
	return f, f.LineColAt(loc.Offset)
}

func normalizePath(p string) string {
	if p == "" || p == "-" {
		return p
	}
	return filepath.ToSlash(filepath.Clean(p))
}
