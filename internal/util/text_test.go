package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "Alice", 10, "Alice"},
		{"exact", "Alice", 5, "Alice"},
		{"cut", "Alexandria", 5, "Alex…"},
		{"width one", "Alexandria", 1, "…"},
		{"zero width", "Alice", 0, ""},
		{"negative width", "Alice", -2, ""},
		{"empty", "", 4, ""},
		{"wide characters", "张伟张伟张伟", 5, "张伟…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
			if w := lipgloss.Width(got); w > tt.width && tt.width > 0 {
				t.Errorf("Truncate(%q, %d) width = %d, exceeds limit", tt.input, tt.width, w)
			}
		})
	}
}

func TestTruncate_PreservesEscapes(t *testing.T) {
	styled := "\x1b[31mAlexandria\x1b[0m"
	got := Truncate(styled, 5)
	if w := lipgloss.Width(got); w != 5 {
		t.Errorf("visible width = %d, want 5 (got %q)", w, got)
	}
	if got[:5] != "\x1b[31m" {
		t.Errorf("leading escape sequence lost: %q", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Bob", 6, "Bob   "},
		{"Bob", 3, "Bob"},
		{"Bobby", 3, "Bobby"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{0, "name", "0 names"},
		{1, "name", "1 name"},
		{2, "team", "2 teams"},
	}

	for _, tt := range tests {
		if got := Count(tt.n, tt.noun); got != tt.want {
			t.Errorf("Count(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
		}
	}
}
