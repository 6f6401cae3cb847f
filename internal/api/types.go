package api

import (
	"github.com/tech2globe/blogapi/internal/api/objects"
	"github.com/tech2globe/blogapi/internal/db"
	"github.com/tech2globe/blogapi/internal/models"
	"github.com/tech2globe/blogapi/internal/search"
)

// PostsData is the data envelope of every post listing.
type PostsData struct {
	Posts      []objects.Post      `json:"posts"`
	Pagination *objects.Pagination `json:"pagination,omitempty"`
}

// PostsResponse wraps post listings with the success/status envelope the
// deployed frontend checks before reading data.
type PostsResponse struct {
	Success bool      `json:"success"`
	Status  int       `json:"status"`
	Data    PostsData `json:"data"`
}

// NewPostsResponse builds a successful listing response.
func NewPostsResponse(posts []objects.Post, pagination *objects.Pagination) PostsResponse {
	return PostsResponse{
		Success: true,
		Status:  200,
		Data:    PostsData{Posts: posts, Pagination: pagination},
	}
}

// PostDetailResponse is the single-post payload with its approved comments.
type PostDetailResponse struct {
	Post     objects.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
}

// AuthorsResponse lists authors. The single-author endpoint reuses it with
// one element.
type AuthorsResponse struct {
	Authors []objects.Author `json:"authors"`
}

// CategoriesResponse lists categories ranked by published post count.
type CategoriesResponse struct {
	Categories []db.CategoryCountRow `json:"categories"`
}

// TagsResponse lists every tag term.
type TagsResponse struct {
	Tags []models.Term `json:"tags"`
}

// SearchResponse lists the documents matching a search query.
type SearchResponse struct {
	Results []search.Document `json:"results"`
}
