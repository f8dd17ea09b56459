package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves byte offsets to
// human-readable positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a file from normalized bytes, computes LineIdx, and returns a new
// FileID. It always creates a new FileID even if a file with the same path
// already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Flags:   flags,
	})
	// The index always points at the latest version of the path.
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or builtin sample) with the
// FileVirtual flag. The content is normalized the same way Load does it.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileVirtual
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(name, content, flags)
}

// Get returns the file for id, or nil if the id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// Lookup returns the FileID registered for path.
func (fileSet *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve maps a span to its start and end line/column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	file := fileSet.Get(span.File)
	if file == nil {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	return toLineCol(file.LineIdx, span.Start), toLineCol(file.LineIdx, span.End)
}

// ResolveOffset maps a single byte offset in file id to a line/column position.
func (fileSet *FileSet) ResolveOffset(id FileID, off uint32) LineCol {
	file := fileSet.Get(id)
	if file == nil {
		return LineCol{Line: 1, Col: 1}
	}
	return toLineCol(file.LineIdx, off)
}

// Line returns the content of the 1-based line number in file id, without the
// trailing newline. Returns an empty slice for out-of-range lines.
func (fileSet *FileSet) Line(id FileID, line uint32) []byte {
	file := fileSet.Get(id)
	if file == nil || line == 0 {
		return nil
	}

	var start uint32
	if line > 1 {
		if int(line-2) >= len(file.LineIdx) {
			return nil
		}
		start = file.LineIdx[line-2] + 1
	}

	end := uint32(len(file.Content))
	if int(line-1) < len(file.LineIdx) {
		end = file.LineIdx[line-1]
	}
	return file.Content[start:end]
}
