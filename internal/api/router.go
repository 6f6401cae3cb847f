package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/internal/cache"
	"github.com/tech2globe/blogapi/internal/db"
	"github.com/tech2globe/blogapi/pkg/config"
	"github.com/tech2globe/blogapi/pkg/logging"
)

// Router sets up API routes
type Router struct {
	cfg    *config.Config
	db     *db.DB
	cache  *cache.Cache
	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(cfg *config.Config, database *db.DB, c *cache.Cache) *Router {
	return &Router{
		cfg:    cfg,
		db:     database,
		cache:  c,
		logger: logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes. One handler set backs both the /api
// and /v1 prefixes; health endpoints sit outside the API key gate.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(gin.Recovery())
	engine.Use(CORSMiddleware())
	engine.Use(RequestLogger(r.logger))
	engine.Use(Tracing())

	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	repo := db.NewRepository(r.db.DB)
	postRepo := db.NewPostRepository(repo)
	termRepo := db.NewTermRepository(repo)
	userRepo := db.NewUserRepository(repo)
	commentRepo := db.NewCommentRepository(repo)
	seoRepo := db.NewSEORepository(repo)

	posts := NewPostsAPI(postRepo, termRepo, seoRepo, commentRepo, r.cache)
	searchAPI := NewSearchAPI(postRepo, r.cache)
	comments := NewCommentsAPI(commentRepo)
	authors := NewAuthorsAPI(userRepo, r.cache)
	categories := NewCategoriesAPI(termRepo, r.cache)
	tags := NewTagsAPI(termRepo, r.cache)

	for _, prefix := range []string{"/api", "/v1"} {
		group := engine.Group(prefix)
		group.Use(APIKeyAuth(r.cfg.API.Key))

		group.GET("/posts", posts.List)
		group.GET("/posts/recent", posts.Recent)
		group.GET("/posts/related", posts.Related)
		group.GET("/posts/search", searchAPI.Search)
		group.POST("/posts/comments", comments.Submit)
		group.GET("/posts/author/:author_id", posts.ByAuthor)
		group.GET("/posts/category/:category_slug", posts.ByCategory)
		group.GET("/posts/:slug", posts.BySlug)

		group.GET("/authors", authors.List)
		group.GET("/authors/:author_id", authors.Get)
		group.GET("/categories", categories.List)
		group.GET("/tags", tags.List)
	}
}

// healthHandler reports service, database and cache health.
func (r *Router) healthHandler(c *gin.Context) {
	ctx := c.Request.Context()

	status := "OK"
	code := http.StatusOK
	checks := gin.H{"database": "OK", "cache": "OK"}

	if err := r.db.Health(ctx); err != nil {
		status = "DEGRADED"
		code = http.StatusServiceUnavailable
		checks["database"] = err.Error()
	}
	if err := r.cache.Health(ctx); err != nil {
		status = "DEGRADED"
		code = http.StatusServiceUnavailable
		checks["cache"] = err.Error()
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": "blog-api",
		"checks":  checks,
	})
}
