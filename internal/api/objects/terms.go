package objects

import (
	"strings"

	"github.com/tech2globe/blogapi/internal/db"
)

// TermRef is the structured category or tag reference attached to a post.
// This is the canonical shape; the joined-string form survives only on the
// legacy list view and the recent/related endpoints.
type TermRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ParseTermList parses a GROUP_CONCAT "name:slug, name:slug" string into an
// ordered term list. Malformed fragments without a slug keep their name and
// get an empty slug.
func ParseTermList(concat string) []TermRef {
	if concat == "" {
		return []TermRef{}
	}
	parts := strings.Split(concat, ", ")
	refs := make([]TermRef, 0, len(parts))
	for _, part := range parts {
		name, slug, _ := strings.Cut(part, ":")
		refs = append(refs, TermRef{Name: name, Slug: slug})
	}
	return refs
}

// TermNames reduces a "name:slug" concat to the comma-joined name string
// older consumers split themselves. Slugs never appear in the string form.
func TermNames(concat string) string {
	refs := ParseTermList(concat)
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return strings.Join(names, ", ")
}

// TermRefs converts structured per-post term rows into the canonical list.
func TermRefs(rows []db.TermRow) []TermRef {
	refs := make([]TermRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, TermRef{Name: row.Name, Slug: row.Slug})
	}
	return refs
}

// termConcatByPost indexes GROUP_CONCAT rows by post ID.
func termConcatByPost(rows []db.TermConcatRow) map[int64]string {
	byPost := make(map[int64]string, len(rows))
	for _, row := range rows {
		if row.Terms.Valid {
			byPost[row.PostID] = row.Terms.String
		}
	}
	return byPost
}
