package objects

import (
	"reflect"
	"testing"

	"github.com/tech2globe/blogapi/internal/db"
)

func TestParseTermList(t *testing.T) {
	tests := []struct {
		name   string
		concat string
		want   []TermRef
	}{
		{
			name:   "two terms",
			concat: "Gardening:gardening, Home Improvement:home-improvement",
			want: []TermRef{
				{Name: "Gardening", Slug: "gardening"},
				{Name: "Home Improvement", Slug: "home-improvement"},
			},
		},
		{
			name:   "single term",
			concat: "Travel:travel",
			want:   []TermRef{{Name: "Travel", Slug: "travel"}},
		},
		{
			name:   "empty string",
			concat: "",
			want:   []TermRef{},
		},
		{
			name:   "fragment without slug keeps name",
			concat: "Orphan",
			want:   []TermRef{{Name: "Orphan", Slug: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTermList(tt.concat)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTermList(%q) = %+v, want %+v", tt.concat, got, tt.want)
			}
		})
	}
}

func TestTermNames(t *testing.T) {
	tests := []struct {
		name   string
		concat string
		want   string
	}{
		{"two terms", "Gardening:gardening, Tips:tips", "Gardening, Tips"},
		{"single term", "Travel:travel", "Travel"},
		{"empty string", "", ""},
		{"fragment without slug", "Orphan", "Orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TermNames(tt.concat); got != tt.want {
				t.Errorf("TermNames(%q) = %q, want %q", tt.concat, got, tt.want)
			}
		})
	}
}

func TestTermRefs(t *testing.T) {
	rows := []db.TermRow{
		{Name: "Gardening", Slug: "gardening"},
		{Name: "DIY", Slug: "diy"},
	}
	got := TermRefs(rows)
	want := []TermRef{{Name: "Gardening", Slug: "gardening"}, {Name: "DIY", Slug: "diy"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermRefs() = %+v, want %+v", got, want)
	}
}
