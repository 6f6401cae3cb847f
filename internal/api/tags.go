package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/internal/cache"
	"github.com/tech2globe/blogapi/internal/models"
	"github.com/tech2globe/blogapi/pkg/logging"
)

// TagStore lists every tag term.
type TagStore interface {
	Tags(ctx context.Context) ([]models.Term, error)
}

// TagsAPI serves the tag listing endpoint.
type TagsAPI struct {
	terms  TagStore
	cache  *cache.Cache
	logger *zap.Logger
}

// NewTagsAPI creates a new tags API
func NewTagsAPI(terms TagStore, c *cache.Cache) *TagsAPI {
	return &TagsAPI{
		terms:  terms,
		cache:  c,
		logger: logging.WithComponent("tags-api"),
	}
}

// List handles GET /tags.
func (a *TagsAPI) List(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.Key("tags", "all")

	var cached TagsResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.terms.Tags(ctx)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	response := TagsResponse{Tags: rows}
	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache tags", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}
