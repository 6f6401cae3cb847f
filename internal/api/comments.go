package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/internal/models"
	"github.com/tech2globe/blogapi/pkg/logging"
)

// CommentWriter stores submitted comments.
type CommentWriter interface {
	Insert(ctx context.Context, comment *models.Comment) error
}

// CommentsAPI serves the comment submission endpoint.
type CommentsAPI struct {
	comments CommentWriter
	logger   *zap.Logger
}

// NewCommentsAPI creates a new comments API
func NewCommentsAPI(comments CommentWriter) *CommentsAPI {
	return &CommentsAPI{
		comments: comments,
		logger:   logging.WithComponent("comments-api"),
	}
}

// CommentRequest is the comment submission body. Website is optional.
type CommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Comment string `json:"comment"`
	PostID  int64  `json:"postId"`
}

// Submit handles POST /posts/comments. Comments go live immediately with
// comment_approved='1'; there is no moderation queue and no cache
// invalidation, so cached post payloads stay stale until their TTL runs out.
func (a *CommentsAPI) Submit(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, a.logger, NewValidationError("Name, email, comment, and post ID are required"))
		return
	}
	if req.Name == "" || req.Email == "" || req.Comment == "" || req.PostID < 1 {
		respondError(c, a.logger, NewValidationError("Name, email, comment, and post ID are required"))
		return
	}

	now := time.Now()
	comment := &models.Comment{
		CommentPostID:      req.PostID,
		CommentAuthor:      sanitize(req.Name),
		CommentAuthorEmail: sanitize(req.Email),
		CommentAuthorURL:   sanitize(req.Website),
		CommentContent:     sanitize(req.Comment),
		CommentDate:        now,
		CommentDateGMT:     now.UTC(),
		CommentApproved:    "1",
	}

	if err := a.comments.Insert(c.Request.Context(), comment); err != nil {
		respondError(c, a.logger, err)
		return
	}

	a.logger.Info("Comment submitted",
		zap.Int64("post_id", req.PostID),
		zap.Int64("comment_id", comment.CommentID),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Comment submitted successfully"})
}

// sanitize doubles single quotes in free-text fields. The statements are
// parameterized; this mirrors what WordPress stores for quoted input.
func sanitize(input string) string {
	return strings.ReplaceAll(input, "'", "''")
}
