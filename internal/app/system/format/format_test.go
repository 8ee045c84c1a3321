package format_test

import (
	"testing"

	"github.com/givehubapp/givehub/internal/app/system/format"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5735551234", "(573) 555-1234"},
		{"573-555-1234", "(573) 555-1234"},
		{"(573) 555 1234", "(573) 555-1234"},
		{"15735551234", "(573) 555-1234"},
		{"+1 573 555 1234", "(573) 555-1234"},

		// Not a 10/11-digit US number: returned unchanged.
		{"555-1234", "555-1234"},
		{"", ""},
		{"+44 20 7946 0958", "+44 20 7946 0958"},
	}

	for _, tt := range tests {
		if got := format.Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Food", "food"},
		{"  Baby Supplies ", "baby supplies"},
		{"CLOTHING", "clothing"},
	}

	for _, tt := range tests {
		if got := format.CategorySlug(tt.in); got != tt.want {
			t.Errorf("CategorySlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"food", "Food"},
		{"baby supplies", "Baby Supplies"},
		{"école supplies", "École Supplies"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := format.CategoryName(tt.in); got != tt.want {
			t.Errorf("CategoryName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategorySlugRoundTrip(t *testing.T) {
	// Slugging a displayed name must return the original slug.
	slugs := []string{"food", "clothing", "baby supplies"}
	for _, s := range slugs {
		if got := format.CategorySlug(format.CategoryName(s)); got != s {
			t.Errorf("round trip for %q: got %q", s, got)
		}
	}
}
