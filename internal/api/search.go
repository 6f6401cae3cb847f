package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/internal/cache"
	"github.com/tech2globe/blogapi/internal/db"
	"github.com/tech2globe/blogapi/internal/search"
	"github.com/tech2globe/blogapi/pkg/logging"
)

// CorpusStore loads the searchable projection of every published post.
type CorpusStore interface {
	SearchCorpus(ctx context.Context) ([]db.SearchRow, error)
}

// SearchAPI serves the fuzzy post search endpoint.
type SearchAPI struct {
	corpus CorpusStore
	cache  *cache.Cache
	logger *zap.Logger
}

// NewSearchAPI creates a new search API
func NewSearchAPI(corpus CorpusStore, c *cache.Cache) *SearchAPI {
	return &SearchAPI{
		corpus: corpus,
		cache:  c,
		logger: logging.WithComponent("search-api"),
	}
}

// Search handles GET /posts/search?query=... The whole published corpus is
// scanned and ranked in memory per miss; the cache absorbs repeat queries.
func (a *SearchAPI) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondError(c, a.logger, NewValidationError("Query parameter is required"))
		return
	}

	ctx := c.Request.Context()
	key := cache.HashKey("search", query)

	var cached SearchResponse
	if a.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := a.corpus.SearchCorpus(ctx)
	if err != nil {
		respondError(c, a.logger, err)
		return
	}

	docs := make([]search.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, search.Document{
			ID:      row.ID,
			Title:   row.Title,
			Excerpt: row.Excerpt,
			Slug:    row.Slug,
		})
	}

	index := search.NewIndex(docs, search.DefaultThreshold)
	response := SearchResponse{Results: index.Search(query)}

	if err := a.cache.SetJSON(ctx, key, response); err != nil {
		a.logger.Warn("Failed to cache search results", zap.Error(err))
	}
	c.JSON(http.StatusOK, response)
}
