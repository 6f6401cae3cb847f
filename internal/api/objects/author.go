package objects

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/tech2globe/blogapi/internal/db"
)

// SocialHandles carries the fixed set of author social links. Every key is
// always present; a handle the author never set is an empty string, not null.
type SocialHandles struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Tumblr    string `json:"tumblr"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
	Wikipedia string `json:"wikipedia"`
	Pinterest string `json:"pinterest"`
}

// Author is the public author shape.
type Author struct {
	ID            int64         `json:"id"`
	DisplayName   string        `json:"displayName"`
	Description   string        `json:"description"`
	Website       string        `json:"website"`
	SocialHandles SocialHandles `json:"socialHandles"`
	ProfileImage  string        `json:"profileImage"`
}

// GravatarURL derives the deterministic profile image URL from an email:
// md5 of the lower-cased, trimmed address.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(hash[:])
}

// ShapeAuthor maps a pivoted author row into the public shape.
func ShapeAuthor(row db.AuthorRow) Author {
	return Author{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		Description: row.Description.String,
		Website:     row.Website.String,
		SocialHandles: SocialHandles{
			Facebook:  row.Facebook.String,
			Instagram: row.Instagram.String,
			LinkedIn:  row.LinkedIn.String,
			Tumblr:    row.Tumblr.String,
			Twitter:   row.Twitter.String,
			YouTube:   row.YouTube.String,
			Wikipedia: row.Wikipedia.String,
			Pinterest: row.Pinterest.String,
		},
		ProfileImage: GravatarURL(row.Email),
	}
}

// ShapeAuthors maps a row set into public authors.
func ShapeAuthors(rows []db.AuthorRow) []Author {
	authors := make([]Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, ShapeAuthor(row))
	}
	return authors
}
