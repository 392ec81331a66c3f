package token_test

import (
	"errors"
	"testing"

	"github.com/db47h/mdspan/token"
	"github.com/google/go-cmp/cmp"
)

func TestFile_Position(t *testing.T) {
	f := token.NewFile("test.md", []byte("ab\n世界x\r\n"))
	tests := []struct {
		pos  token.Pos
		want token.Position
		s    string
	}{
		{0, token.Position{"test.md", 0, 1, 1, 1}, "test.md:1:1"},
		{2, token.Position{"test.md", 2, 1, 3, 3}, "test.md:1:3"},
		{3, token.Position{"test.md", 3, 2, 1, 1}, "test.md:2:1"},
		{6, token.Position{"test.md", 6, 2, 4, 3}, "test.md:2:4"},
		{9, token.Position{"test.md", 9, 2, 7, 5}, "test.md:2:7"},
		{12, token.Position{"test.md", 12, 3, 1, 1}, "test.md:3:1"},
		{13, token.Position{Filename: "test.md", Offset: 13}, "-"},
		{token.NoPos, token.Position{Filename: "test.md", Offset: -1}, "-"},
	}
	for _, tt := range tests {
		p := f.Position(tt.pos)
		if diff := cmp.Diff(tt.want, p); diff != "" {
			t.Errorf("Position(%d) mismatch (-want +got):\n%s", tt.pos, diff)
		}
		if s := p.String(); s != tt.s {
			t.Errorf("Position(%d).String() = %q, want %q", tt.pos, s, tt.s)
		}
	}
	if n := f.LineCount(); n != 3 {
		t.Errorf("LineCount() = %d, want 3", n)
	}
	if f.Name() != "test.md" {
		t.Errorf("Name() = %q", f.Name())
	}
}

func TestPosition_String(t *testing.T) {
	p := token.NewFile("", []byte("a\nb")).Position(2)
	if s := p.String(); s != "2:1" {
		t.Errorf("got %q, want %q", s, "2:1")
	}
}

func TestFile_LinePos(t *testing.T) {
	f := token.NewFile("", []byte("a\nbc\n"))
	for line, want := range []token.Pos{token.NoPos, 0, 2, 5, token.NoPos} {
		if p := f.LinePos(line); p != want {
			t.Errorf("LinePos(%d) = %d, want %d", line, p, want)
		}
	}
}

func TestFile_LineBytes(t *testing.T) {
	f := token.NewFile("", []byte("first\r\nsecond\nthird"))
	tests := []struct {
		pos  token.Pos
		want string
	}{
		{0, "first"},
		{6, "first"},
		{7, "second"},
		{13, "second"},
		{14, "third"},
		{19, "third"},
	}
	for _, tt := range tests {
		l, err := f.LineBytes(tt.pos)
		if err != nil {
			t.Errorf("LineBytes(%d): %v", tt.pos, err)
			continue
		}
		if string(l) != tt.want {
			t.Errorf("LineBytes(%d) = %q, want %q", tt.pos, l, tt.want)
		}
	}
	if _, err := f.LineBytes(20); !errors.Is(err, token.ErrLine) {
		t.Errorf("LineBytes(20): got error %v, want %v", err, token.ErrLine)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"déjà vu", 7},
		{"世界", 4},
		{"＃〄", 4},
		{"a\tb\n", 2},
	}
	for _, tt := range tests {
		if w := token.Width([]byte(tt.in)); w != tt.want {
			t.Errorf("Width(%q) = %d, want %d", tt.in, w, tt.want)
		}
	}
}
