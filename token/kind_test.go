package token_test

import (
	"testing"

	"github.com/db47h/mdspan/token"
)

func TestKind(t *testing.T) {
	tests := []struct {
		k        token.Kind
		name     string
		styled   bool
		reserved bool
	}{
		{token.Normal, "Normal", false, false},
		{token.Italic, "Italic", true, false},
		{token.Bold, "Bold", true, false},
		{token.Underline, "Underline", true, false},
		{token.Link, "Link", false, true},
		{token.InlineCode, "InlineCode", false, true},
		{token.BlockCode, "BlockCode", false, true},
		{token.Kind(42), "Kind(42)", false, false},
		{token.Kind(-1), "Kind(-1)", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s := tt.k.String(); s != tt.name {
				t.Errorf("String() = %q", s)
			}
			if tt.k.IsStyled() != tt.styled {
				t.Errorf("IsStyled() = %v", !tt.styled)
			}
			if tt.k.IsReserved() != tt.reserved {
				t.Errorf("IsReserved() = %v", !tt.reserved)
			}
		})
	}
}
