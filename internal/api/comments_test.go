package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func doJSONRequest(handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestSubmitRejectsIncompleteComments(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","comment":"hi","postId":1}`},
		{"missing email", `{"name":"A","comment":"hi","postId":1}`},
		{"missing comment", `{"name":"A","email":"a@b.com","postId":1}`},
		{"missing post id", `{"name":"A","email":"a@b.com","comment":"hi"}`},
		{"malformed body", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCommentStore{}
			api := NewCommentsAPI(store)

			w := doJSONRequest(api.Submit, http.MethodPost, "/posts/comments", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Name, email, comment, and post ID are required") {
				t.Errorf("body = %s", w.Body.String())
			}
			if len(store.inserted) != 0 {
				t.Error("rejected submission must not reach the database")
			}
		})
	}
}

func TestSubmitStoresApprovedComment(t *testing.T) {
	store := &fakeCommentStore{}
	api := NewCommentsAPI(store)

	body := `{"name":"Jane O'Neil","email":"jane@example.com","website":"https://example.com","comment":"it's great","postId":42}`
	w := doJSONRequest(api.Submit, http.MethodPost, "/posts/comments", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Comment submitted successfully") {
		t.Errorf("body = %s", w.Body.String())
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d comments, want 1", len(store.inserted))
	}
	comment := store.inserted[0]
	if comment.CommentApproved != "1" {
		t.Errorf("comment_approved = %q, want \"1\"", comment.CommentApproved)
	}
	if comment.CommentPostID != 42 {
		t.Errorf("comment_post_ID = %d", comment.CommentPostID)
	}
	if comment.CommentAuthor != "Jane O''Neil" {
		t.Errorf("single quotes should be doubled, got %q", comment.CommentAuthor)
	}
	if comment.CommentContent != "it''s great" {
		t.Errorf("content = %q", comment.CommentContent)
	}
	if comment.CommentDate.IsZero() || comment.CommentDateGMT.IsZero() {
		t.Error("comment dates must be set on insert")
	}
}
