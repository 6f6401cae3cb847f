package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/internal/api/objects"
	"github.com/tech2globe/blogapi/internal/cache"
	"github.com/tech2globe/blogapi/internal/db"
	"github.com/tech2globe/blogapi/internal/models"
	"github.com/tech2globe/blogapi/pkg/logging"
)

const (
	recentPostCount  = 3
	relatedPostCount = 2
)

// PostStore is the post data access surface the handlers need.
type PostStore interface {
	ListPublished(ctx context.Context, limit, offset int) ([]db.PostRow, error)
	CountPublished(ctx context.Context) (int64, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]db.PostRow, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	ListByCategorySlug(ctx context.Context, slug string, limit, offset int) ([]db.PostRow, error)
	CountByCategorySlug(ctx context.Context, slug string) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*db.PostRow, error)
	Recent(ctx context.Context, n int) ([]db.RecentPostRow, error)
	RelatedByCategoryName(ctx context.Context, categoryName string, n int) ([]db.RecentPostRow, error)
}

// TermStore resolves categories and tags for posts.
type TermStore interface {
	CategoriesForPosts(ctx context.Context, ids []int64) ([]db.TermConcatRow, error)
	TagsForPosts(ctx context.Context, ids []int64) ([]db.TermConcatRow, error)
	TermsForPost(ctx context.Context, postID int64, taxonomy string) ([]db.TermRow, error)
}

// SEOStore resolves Yoast records for posts.
type SEOStore interface {
	ForPosts(ctx context.Context, ids []int64) ([]models.SEOIndexable, error)
	ForPost(ctx context.Context, id int64) ([]models.SEOIndexable, error)
}

// CommentReader lists the approved comments of a post.
type CommentReader interface {
	ApprovedForPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

// PostsAPI serves the post listing and detail endpoints.
type PostsAPI struct {
	posts    PostStore
	terms    TermStore
	seo      SEOStore
	comments CommentReader
	cache    *cache.Cache
	logger   *zap.Logger
}

// NewPostsAPI creates a new posts API
func NewPostsAPI(posts PostStore, terms TermStore, seo SEOStore, comments CommentReader, c *cache.Cache) *PostsAPI {
	return &PostsAPI{
		posts:    posts,
		terms:    terms,
		seo:      seo,
		comments: comments,
		cache:    c,
		logger:   logging.WithComponent("posts-api"),
	}
}

// List handles GET /posts. The optional shape=legacy flag keeps categories
// in the joined-string form older consumers parse themselves.
func (a *PostsAPI) List(c *gin.Context) {
	page, limit, err := objects.ParsePageLimit(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, a.logger, NewValidationError("Invalid pagination parameters"))
		return
	}
	legacy := c.Query("shape") == "legacy"

	ctx := c.Request.Context()
	key := cache.Key("posts", strconv.Itoa(page), strconv.Itoa(limit), shapeName(legacy))

	var cached PostsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.posts.ListPublished(ctx, limit, objects.Offset(page, limit))
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	total, err := a.posts.CountPublished(ctx)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	posts, err := a.shapeListing(ctx, rows, legacy)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	pagination := objects.NewPagination(page, limit, total)
	response := NewPostsResponse(posts, &pagination)

	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache post listing", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// Recent handles GET /posts/recent: the top 3 newest posts with categories
// and tags as comma-joined strings.
func (a *PostsAPI) Recent(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.Key("posts", "recent")

	var cached PostsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.posts.Recent(ctx, recentPostCount)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	response := NewPostsResponse(objects.ShapeRecent(rows), nil)
	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache recent posts", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// Related handles GET /posts/related?categoryName=...: the 2 newest posts
// in the named category.
func (a *PostsAPI) Related(c *gin.Context) {
	categoryName := c.Query("categoryName")
	if categoryName == "" {
		respondError(c, a.logger, NewValidationError("Category Name is required"))
		return
	}

	ctx := c.Request.Context()
	key := cache.Key("posts", "related", categoryName)

	var cached PostsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.posts.RelatedByCategoryName(ctx, categoryName, relatedPostCount)
	if errors.Is(err, db.ErrTermNotFound) {
		respondError(c, a.logger, NewNotFoundError("Category not found"))
		return
	}
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	response := NewPostsResponse(objects.ShapeRecent(rows), nil)
	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache related posts", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// ByAuthor handles GET /posts/author/:author_id with pagination. Both
// categories and tags come back as structured term lists.
func (a *PostsAPI) ByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil || authorID < 1 {
		respondError(c, a.logger, NewValidationError("Invalid pagination parameters or missing author ID"))
		return
	}
	page, limit, err := objects.ParsePageLimit(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, a.logger, NewValidationError("Invalid pagination parameters or missing author ID"))
		return
	}

	ctx := c.Request.Context()
	key := cache.Key("posts", "author", strconv.FormatInt(authorID, 10), strconv.Itoa(page), strconv.Itoa(limit))

	var cached PostsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.posts.ListByAuthor(ctx, authorID, limit, objects.Offset(page, limit))
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	total, err := a.posts.CountByAuthor(ctx, authorID)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	ids := postIDs(rows)
	catRows, err := a.terms.CategoriesForPosts(ctx, ids)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	tagRows, err := a.terms.TagsForPosts(ctx, ids)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	seo, err := a.seo.ForPosts(ctx, ids)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	pagination := objects.NewPagination(page, limit, total)
	response := NewPostsResponse(objects.ShapePostsStructured(rows, catRows, tagRows, seo), &pagination)

	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache author posts", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// ByCategory handles GET /posts/category/:category_slug with pagination.
func (a *PostsAPI) ByCategory(c *gin.Context) {
	slug := c.Param("category_slug")
	page, limit, err := objects.ParsePageLimit(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, a.logger, NewValidationError("Invalid pagination parameters"))
		return
	}

	ctx := c.Request.Context()
	key := cache.Key("posts", "category", slug, strconv.Itoa(page), strconv.Itoa(limit))

	var cached PostsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.posts.ListByCategorySlug(ctx, slug, limit, objects.Offset(page, limit))
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	total, err := a.posts.CountByCategorySlug(ctx, slug)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	posts, err := a.shapeListing(ctx, rows, false)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	pagination := objects.NewPagination(page, limit, total)
	response := NewPostsResponse(posts, &pagination)

	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache category posts", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// BySlug handles GET /posts/:slug: the post with its structured terms, SEO
// records and approved comments. Unknown slugs are a 404 and never cached.
func (a *PostsAPI) BySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx := c.Request.Context()
	key := cache.Key("post", slug)

	var cached PostDetailResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	row, err := a.posts.GetBySlug(ctx, slug)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	if row == nil {
		respondError(c, a.logger, NewNotFoundError("Post not found"))
		return
	}

	catRows, err := a.terms.TermsForPost(ctx, row.ID, "category")
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	tagRows, err := a.terms.TermsForPost(ctx, row.ID, "post_tag")
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	seo, err := a.seo.ForPost(ctx, row.ID)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	comments, err := a.comments.ApprovedForPost(ctx, row.ID)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	response := PostDetailResponse{
		Post:     objects.ShapePost(*row, objects.TermRefs(catRows), objects.TermRefs(tagRows), seo),
		Comments: comments,
	}

	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache post detail", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// shapeListing resolves terms and SEO records for a page of posts and
// shapes them. Legacy keeps categories as the raw joined string.
func (a *PostsAPI) shapeListing(ctx context.Context, rows []db.PostRow, legacy bool) ([]objects.Post, error) {
	ids := postIDs(rows)
	catRows, err := a.terms.CategoriesForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	tagRows, err := a.terms.TagsForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	seo, err := a.seo.ForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	if legacy {
		return objects.ShapePostsLegacy(rows, catRows, tagRows, seo), nil
	}
	return objects.ShapePosts(rows, catRows, tagRows, seo), nil
}

func postIDs(rows []db.PostRow) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

func shapeName(legacy bool) string {
	if legacy {
		return "legacy"
	}
	return "default"
}
