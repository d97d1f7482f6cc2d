package source

import "fmt"

// FileID identifies a file inside a FileSet. 0 means "no file".
type FileID uint16

// NoFileID marks the absence of a file.
const NoFileID FileID = 0

func (id FileID) IsValid() bool { return id != NoFileID }

// Pos is a source position supplied by the upstream parser: a file plus a
// 1-based line number. Line 0 means the position is unknown.
type Pos struct {
	File FileID
	Line uint32
}

// NoPos marks the absence of a position.
var NoPos = Pos{}

func (p Pos) IsValid() bool { return p.Line != 0 }

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.File, p.Line)
}

// Before reports whether p sorts before other (file first, then line).
func (p Pos) Before(other Pos) bool {
	if p.File != other.File {
		return p.File < other.File
	}
	return p.Line < other.Line
}
