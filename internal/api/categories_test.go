package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tech2globe/blogapi/internal/db"
)

type fakeCategoryStore struct {
	rows  []db.CategoryCountRow
	calls int
}

func (f *fakeCategoryStore) CategoriesWithCounts(ctx context.Context) ([]db.CategoryCountRow, error) {
	f.calls++
	return f.rows, nil
}

func rankedCategories(n int) []db.CategoryCountRow {
	rows := make([]db.CategoryCountRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, db.CategoryCountRow{
			ID:        int64(i + 1),
			Name:      "category",
			PostCount: int64(n - i),
		})
	}
	return rows
}

func TestCategoriesPopularValidation(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"zero", "/categories?popular=0"},
		{"negative", "/categories?popular=-2"},
		{"non-numeric", "/categories?popular=many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCategoryStore{}
			api := NewCategoriesAPI(store, newTestCache(t))

			w := doRequest(api.List, http.MethodGet, tt.target, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if store.calls != 0 {
				t.Error("rejected request must not issue a query")
			}
		})
	}
}

func TestCategoriesPopularTruncatesAfterRanking(t *testing.T) {
	store := &fakeCategoryStore{rows: rankedCategories(10)}
	api := NewCategoriesAPI(store, newTestCache(t))

	w := doRequest(api.List, http.MethodGet, "/categories?popular=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var response CategoriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(response.Categories) != 3 {
		t.Fatalf("got %d categories, want 3", len(response.Categories))
	}
	for i, want := range []int64{10, 9, 8} {
		if response.Categories[i].PostCount != want {
			t.Errorf("categories[%d].PostCount = %d, want %d", i, response.Categories[i].PostCount, want)
		}
	}
}

func TestCategoriesCacheKeyIncludesPopular(t *testing.T) {
	store := &fakeCategoryStore{rows: rankedCategories(5)}
	api := NewCategoriesAPI(store, newTestCache(t))

	doRequest(api.List, http.MethodGet, "/categories", nil)
	doRequest(api.List, http.MethodGet, "/categories?popular=2", nil)
	if store.calls != 2 {
		t.Errorf("all and popular=2 must not share a cache entry, calls = %d", store.calls)
	}

	doRequest(api.List, http.MethodGet, "/categories?popular=2", nil)
	if store.calls != 2 {
		t.Errorf("repeat popular=2 should hit the cache, calls = %d", store.calls)
	}
}
