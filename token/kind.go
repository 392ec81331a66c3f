// Package token defines the span kinds produced by the mdspan scanner along
// with position and display width helpers.
//
package token

//go:generate stringer -type Kind

// Kind identifies the formatting of a span.
//
// Renderers are expected to handle every Kind, including the reserved ones
// that the scanner does not produce yet.
//
type Kind int

// Span kinds.
//
const (
	Normal     Kind = iota // unformatted text
	Italic                 // *text* or _text_
	Bold                   // **text**
	Underline              // __text__
	Link                   // reserved: [text](url)
	InlineCode             // reserved: `text`
	BlockCode              // reserved: ```lang body```
)

// IsStyled returns true for the emphasis kinds Italic, Bold and Underline.
//
func (k Kind) IsStyled() bool {
	return k == Italic || k == Bold || k == Underline
}

// IsReserved returns true for kinds that are part of the data model but never
// emitted by the scanner.
//
func (k Kind) IsReserved() bool {
	return k == Link || k == InlineCode || k == BlockCode
}
