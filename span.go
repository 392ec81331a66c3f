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
	"fmt"

	"github.com/db47h/mdspan/token"
)

// Span is a chunk of the input with a given formatting.
//
// Text and Attr are sub-slices of the scanned buffer, they share its storage.
// The buffer must not be modified while spans are in use.
//
type Span struct {
	Kind    token.Kind
	Pos     token.Pos // offset of Text in the input
	Text    []byte    // span text, link text or code body
	AttrPos token.Pos // offset of Attr, token.NoPos if absent
	Attr    []byte    // link url or code block language
}

// End returns the offset immediately after Text.
//
func (sp *Span) End() token.Pos {
	return sp.Pos + token.Pos(len(sp.Text))
}

// Width returns the display width of Text in terminal cells.
//
func (sp *Span) Width() int {
	return token.Width(sp.Text)
}

func (sp *Span) String() string {
	if sp.AttrPos.IsValid() {
		return fmt.Sprintf("%d: %s %q %q", sp.Pos, sp.Kind, sp.Text, sp.Attr)
	}
	return fmt.Sprintf("%d: %s %q", sp.Pos, sp.Kind, sp.Text)
}
