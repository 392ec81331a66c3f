// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package mdspan

import (
	"unicode/utf8"

	"github.com/db47h/mdspan/token"
)

// eof is the value of the look-ahead character at the end of the input.
//
const eof rune = -1

// A Scanner holds the scanner internal state while processing a given input.
// A Scanner must not be used concurrently, but distinct Scanners can run in
// parallel, even on the same input.
//
type Scanner struct {
	src     []byte
	cursor  int    // offset of the next character to read
	start   int    // start offset of the next span
	open    marker // marker of the currently open span
	literal marker // escaped opening marker whose closer is also literal
	done    bool
	queue
}

// Scan returns all the spans found in src. It never fails: malformed input
// such as unterminated markers or a trailing backslash degrades into Normal
// text. The last span is always a Normal span, possibly empty.
//
func Scan(src []byte) []Span {
	var (
		s     Scanner
		spans []Span
	)
	s.Init(src)
	for {
		sp, ok := s.Scan()
		if !ok {
			return spans
		}
		spans = append(spans, sp)
	}
}

// Init readies the scanner to scan src. A Scanner can be re-used by calling
// Init again.
//
func (s *Scanner) Init(src []byte) {
	s.src = src
	s.cursor = 0
	s.start = 0
	s.open = none
	s.literal = none
	s.done = false
	s.queue.reset()
}

// Scan returns the next span and true, or a zero Span and false once all of
// the input has been returned.
//
func (s *Scanner) Scan() (Span, bool) {
	for s.count == 0 {
		switch {
		case s.done:
			return Span{}, false
		case s.cursor < len(s.src):
			s.step()
		default:
			s.emit(token.Normal, s.start, len(s.src))
			s.done = true
		}
	}
	return s.pop(), true
}

// emit queues a span of the given kind for src[from:to].
//
func (s *Scanner) emit(k token.Kind, from, to int) {
	s.push(Span{
		Kind:    k,
		Pos:     token.Pos(from),
		Text:    s.src[from:to:to],
		AttrPos: token.NoPos,
	})
}

// step processes the character at the cursor.
//
func (s *Scanner) step() {
	c, w := utf8.DecodeRune(s.src[s.cursor:])
	c2 := eof
	if n := s.cursor + w; n < len(s.src) {
		c2, _ = utf8.DecodeRune(s.src[n:])
	}
	m := classify(c, c2)

	if prev, _ := utf8.DecodeLastRune(s.src[:s.cursor]); prev == '\\' {
		// drop the backslash, the current character starts literal text.
		s.emit(token.Normal, s.start, s.cursor-1)
		s.start = s.cursor
		if s.open == none && m != none {
			s.literal = m
		}
		s.skip(m)
		m = none
	} else if s.open == none && m != none && m == s.literal {
		s.literal = none
		s.skip(m)
		m = none
	}

	switch {
	case s.open != none && m == s.open:
		s.emit(m.kind(), s.start, s.cursor)
		s.start = s.cursor + m.width()
		s.skip(m)
		s.open = none
	case s.open == none && m != none:
		s.emit(token.Normal, s.start, s.cursor)
		s.start = s.cursor + m.width()
		s.skip(m)
		s.open = m
	}

	s.cursor += w
}

// skip moves the cursor to the last character of a two character marker.
//
func (s *Scanner) skip(m marker) {
	if m.width() == 2 {
		s.cursor++
	}
}
