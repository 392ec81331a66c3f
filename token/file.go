package token

import (
	"bytes"
	"errors"
	"fmt"
)

// Pos represents a byte offset within the scanned input.
//
type Pos int

// NoPos is the position of an absent span attribute.
//
const NoPos Pos = -1

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// ErrLine is returned by File.LineBytes for positions outside of the input.
//
var ErrLine = errors.New("invalid line number")

// Position describes an arbitrary source position including the file, line,
// and column location.
//
type Position struct {
	Filename string
	Offset   int // byte offset in the input
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
	Cell     int // 1-based display column in terminal cells
}

// IsValid returns true if the position has a valid line number.
//
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File handles offset to line/column conversion for an input buffer. The
// buffer is borrowed, not copied, and must not be modified while the File is
// in use.
//
type File struct {
	name  string
	src   []byte
	lines []Pos // 0-based line/Pos information, built on first use
}

// NewFile returns a new File for the given input.
//
func NewFile(name string, src []byte) *File {
	return &File{
		name: name,
		src:  src,
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// LineCount returns the number of lines in the input. An empty input has one
// empty line.
//
func (f *File) LineCount() int {
	f.init()
	return len(f.lines)
}

func (f *File) init() {
	if f.lines != nil {
		return
	}
	f.lines = append(f.lines, 0)
	for i := 0; ; {
		n := bytes.IndexByte(f.src[i:], '\n')
		if n < 0 {
			break
		}
		i += n + 1
		f.lines = append(f.lines, Pos(i))
	}
}

// Position returns the position information for the given pos. Offsets past
// the end of the input (except the end itself) yield an invalid Position.
//
func (f *File) Position(pos Pos) Position {
	if !pos.IsValid() || int(pos) > len(f.src) {
		return Position{Filename: f.name, Offset: int(pos)}
	}
	f.init()
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	ls := f.lines[i-1]
	return Position{
		Filename: f.name,
		Offset:   int(pos),
		Line:     i,
		Column:   int(pos-ls) + 1,
		Cell:     Width(f.src[ls:pos]) + 1,
	}
}

// LinePos returns the offset of the given 1-based line, or NoPos if there is
// no such line.
//
func (f *File) LinePos(line int) Pos {
	f.init()
	if line < 1 || line > len(f.lines) {
		return NoPos
	}
	return f.lines[line-1]
}

// LineBytes returns the line containing pos, without its line terminator.
// The returned slice shares the File's input buffer.
//
func (f *File) LineBytes(pos Pos) ([]byte, error) {
	p := f.Position(pos)
	if !p.IsValid() {
		return nil, ErrLine
	}
	s := f.LinePos(p.Line)
	l := f.src[s:]
	if n := bytes.IndexByte(l, '\n'); n >= 0 {
		l = l[:n]
	}
	return bytes.TrimSuffix(l, []byte{'\r'}), nil
}
