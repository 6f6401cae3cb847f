package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/internal/api/objects"
	"github.com/tech2globe/blogapi/internal/cache"
	"github.com/tech2globe/blogapi/internal/db"
	"github.com/tech2globe/blogapi/pkg/logging"
)

// AuthorStore is the author data access surface the handlers need.
type AuthorStore interface {
	Authors(ctx context.Context) ([]db.AuthorRow, error)
	AuthorByID(ctx context.Context, id int64) ([]db.AuthorRow, error)
}

// AuthorsAPI serves the author endpoints.
type AuthorsAPI struct {
	users  AuthorStore
	cache  *cache.Cache
	logger *zap.Logger
}

// NewAuthorsAPI creates a new authors API
func NewAuthorsAPI(users AuthorStore, c *cache.Cache) *AuthorsAPI {
	return &AuthorsAPI{
		users:  users,
		cache:  c,
		logger: logging.WithComponent("authors-api"),
	}
}

// List handles GET /authors.
func (a *AuthorsAPI) List(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.Key("authors", "all")

	var cached AuthorsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.users.Authors(ctx)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	response := AuthorsResponse{Authors: objects.ShapeAuthors(rows)}
	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache authors", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /authors/:author_id. The response keeps the list shape
// with a single element.
func (a *AuthorsAPI) Get(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("author_id"), 10, 64)
	if err != nil || authorID < 1 {
		respondError(c, a.logger, NewValidationError("Invalid author ID"))
		return
	}

	ctx := c.Request.Context()
	key := cache.Key("authors", strconv.FormatInt(authorID, 10))

	var cached AuthorsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.users.AuthorByID(ctx, authorID)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}
	if len(rows) == 0 {
		respondError(c, a.logger, NewNotFoundError("Author not found"))
		return
	}

	response := AuthorsResponse{Authors: objects.ShapeAuthors(rows)}
	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache author", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}
