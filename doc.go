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

/*
Package mdspan provides a single-pass, zero-copy lexer for inline
markdown-style emphasis.

The scanner splits a UTF-8 buffer into an ordered, flat sequence of spans. Each
span has a token.Kind and a Text field that is a sub-slice of the input: no
text is copied. The scanner decides where formatting begins and ends; turning
spans into HTML, terminal escapes or anything else is left to the caller.

Markers

The following delimiters are recognized:

	*text*     Italic
	_text_     Italic
	**text**   Bold
	__text__   Underline

A span opened with a given marker is only closed by the very same marker: a
span opened with * is not closed by _ or by **. Two character markers are
matched greedily, so "**" is always Bold and never an empty Italic span.
Markers do not nest; while a span is open, other markers are plain text.

Any text outside of styled spans is returned as Normal spans. Normal spans may
be empty, for example before a marker at the start of the input. The last span
is always a Normal span covering the remainder of the input.

Escapes

A backslash drops itself and makes the following character literal. An escaped
opening marker also makes its matching closer literal:

	hello \**world**!   ->   Normal("hello "), Normal("**world**!")

Unterminated spans

A marker that is never closed is dropped and the text after it ends up in the
trailing Normal span:

	a *unclosed   ->   Normal("a "), Normal("unclosed")

Reserved kinds

token.Link, token.InlineCode and token.BlockCode are part of the data model so
that renderers handle them today, but the scanner does not produce them.

Positions

Span.Pos is a byte offset into the input. Use token.File to convert it to a
line and column, and token.Width to compute how many terminal cells a span
occupies.

*/
package mdspan
