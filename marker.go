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

import "github.com/db47h/mdspan/token"

// marker is an emphasis delimiter. All markers are ASCII, so their width in
// characters is also their width in bytes.
//
type marker int

const (
	none marker = iota
	star
	star2
	underscore
	underscore2
)

// classify returns the marker starting with c. c2 is the character following
// c, or eof.
//
func classify(c, c2 rune) marker {
	switch c {
	case '*':
		if c2 == '*' {
			return star2
		}
		return star
	case '_':
		if c2 == '_' {
			return underscore2
		}
		return underscore
	}
	return none
}

func (m marker) width() int {
	switch m {
	case star, underscore:
		return 1
	case star2, underscore2:
		return 2
	}
	return 0
}

// kind returns the Kind of spans delimited by m.
//
func (m marker) kind() token.Kind {
	switch m {
	case star, underscore:
		return token.Italic
	case star2:
		return token.Bold
	case underscore2:
		return token.Underline
	}
	return token.Normal
}
