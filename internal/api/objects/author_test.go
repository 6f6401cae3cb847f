package objects

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tech2globe/blogapi/internal/db"
)

func TestGravatarURL(t *testing.T) {
	// md5("test@example.com") — the address is trimmed and lower-cased first
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0"

	tests := []struct {
		name  string
		email string
	}{
		{"already normalized", "test@example.com"},
		{"mixed case with trailing space", "Test@Example.com "},
		{"leading whitespace", "  TEST@EXAMPLE.COM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GravatarURL(tt.email); got != want {
				t.Errorf("GravatarURL(%q) = %q, want %q", tt.email, got, want)
			}
		})
	}
}

func TestShapeAuthorDefaultsAbsentHandles(t *testing.T) {
	row := db.AuthorRow{
		ID:          7,
		DisplayName: "Jane Doe",
		Email:       "jane@example.com",
		Twitter:     sql.NullString{String: "https://twitter.com/jane", Valid: true},
		// facebook and the rest never set
	}

	author := ShapeAuthor(row)

	if author.SocialHandles.Twitter != "https://twitter.com/jane" {
		t.Errorf("Twitter = %q", author.SocialHandles.Twitter)
	}
	if author.SocialHandles.Facebook != "" {
		t.Errorf("absent Facebook should be empty string, got %q", author.SocialHandles.Facebook)
	}

	// Every handle key must serialize, and none may be null.
	raw, err := json.Marshal(author)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"facebook", "instagram", "linkedin", "tumblr", "twitter", "youtube", "wikipedia", "pinterest"} {
		if !strings.Contains(string(raw), `"`+key+`"`) {
			t.Errorf("serialized author missing socialHandles key %q", key)
		}
	}
	if strings.Contains(string(raw), "null") {
		t.Errorf("serialized author contains null: %s", raw)
	}
}

func TestShapeAuthors(t *testing.T) {
	rows := []db.AuthorRow{
		{ID: 1, DisplayName: "A", Email: "a@example.com"},
		{ID: 2, DisplayName: "B", Email: "b@example.com"},
	}
	authors := ShapeAuthors(rows)
	if len(authors) != 2 {
		t.Fatalf("len = %d, want 2", len(authors))
	}
	if authors[0].ID != 1 || authors[1].ID != 2 {
		t.Errorf("order not preserved: %+v", authors)
	}
}
