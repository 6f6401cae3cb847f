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

// CategoryStore ranks categories by published post count.
type CategoryStore interface {
	CategoriesWithCounts(ctx context.Context) ([]db.CategoryCountRow, error)
}

// CategoriesAPI serves the category listing endpoint.
type CategoriesAPI struct {
	terms  CategoryStore
	cache  *cache.Cache
	logger *zap.Logger
}

// NewCategoriesAPI creates a new categories API
func NewCategoriesAPI(terms CategoryStore, c *cache.Cache) *CategoriesAPI {
	return &CategoriesAPI{
		terms:  terms,
		cache:  c,
		logger: logging.WithComponent("categories-api"),
	}
}

// List handles GET /categories. With popular=N only the top N categories by
// post count survive; truncation happens after ranking.
func (a *CategoriesAPI) List(c *gin.Context) {
	popular := -1
	if raw := c.Query("popular"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(c, a.logger, NewValidationError("Invalid query parameter for popular categories"))
			return
		}
		popular = parsed
	}

	ctx := c.Request.Context()
	key := cache.Key("categories", popularKey(popular))

	var cached CategoriesResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.terms.CategoriesWithCounts(ctx)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	response := CategoriesResponse{Categories: objects.TopCategories(rows, popular)}
	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache categories", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}

func popularKey(popular int) string {
	if popular < 0 {
		return "all"
	}
	return strconv.Itoa(popular)
}
