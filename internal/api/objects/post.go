package objects

import (
	"sort"

	"github.com/tech2globe/blogapi/internal/db"
	"github.com/tech2globe/blogapi/internal/models"
)

// Post is the public post shape. Categories and Tags hold either the
// canonical []TermRef or a joined string on the legacy and recent views;
// both forms exist in deployed consumers so both survive here.
type Post struct {
	db.PostRow
	ThumbnailURL string                `json:"thumbnail_url"`
	AuthorName   string                `json:"author_name"`
	Categories   interface{}           `json:"categories"`
	Tags         interface{}           `json:"tags"`
	YoastMeta    []models.SEOIndexable `json:"yoastMeta"`
}

// ShapePosts merges a page of post rows with their per-post category and
// tag concatenations and SEO records. Categories become the canonical
// structured list; tags keep the joined-string form the list endpoint has
// always served, names only.
func ShapePosts(rows []db.PostRow, catRows, tagRows []db.TermConcatRow, seo []models.SEOIndexable) []Post {
	cats := termConcatByPost(catRows)
	tags := termConcatByPost(tagRows)
	seoRecords := seoByPost(seo)

	posts := make([]Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, Post{
			PostRow:      row,
			ThumbnailURL: row.ThumbnailURL.String,
			AuthorName:   row.AuthorName.String,
			Categories:   ParseTermList(cats[row.ID]),
			Tags:         TermNames(tags[row.ID]),
			YoastMeta:    seoFor(seoRecords, row.ID),
		})
	}
	return posts
}

// ShapePostsStructured is ShapePosts with tags also as the structured list,
// used by the author listing.
func ShapePostsStructured(rows []db.PostRow, catRows, tagRows []db.TermConcatRow, seo []models.SEOIndexable) []Post {
	cats := termConcatByPost(catRows)
	tags := termConcatByPost(tagRows)
	seoRecords := seoByPost(seo)

	posts := make([]Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, Post{
			PostRow:      row,
			ThumbnailURL: row.ThumbnailURL.String,
			AuthorName:   row.AuthorName.String,
			Categories:   ParseTermList(cats[row.ID]),
			Tags:         ParseTermList(tags[row.ID]),
			YoastMeta:    seoFor(seoRecords, row.ID),
		})
	}
	return posts
}

// ShapePostsLegacy is the compatibility view of ShapePosts: categories and
// tags both stay as comma-joined name strings older consumers split
// themselves. SEO records keep the same list form as the default shape.
func ShapePostsLegacy(rows []db.PostRow, catRows, tagRows []db.TermConcatRow, seo []models.SEOIndexable) []Post {
	cats := termConcatByPost(catRows)
	tags := termConcatByPost(tagRows)
	seoRecords := seoByPost(seo)

	posts := make([]Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, Post{
			PostRow:      row,
			ThumbnailURL: row.ThumbnailURL.String,
			AuthorName:   row.AuthorName.String,
			Categories:   TermNames(cats[row.ID]),
			Tags:         TermNames(tags[row.ID]),
			YoastMeta:    seoFor(seoRecords, row.ID),
		})
	}
	return posts
}

// ShapeRecent maps single-query rows whose categories and tags are already
// comma-joined strings.
func ShapeRecent(rows []db.RecentPostRow) []Post {
	posts := make([]Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, Post{
			PostRow:      row.PostRow,
			ThumbnailURL: row.ThumbnailURL.String,
			AuthorName:   row.AuthorName.String,
			Categories:   row.Categories.String,
			Tags:         row.Tags.String,
			YoastMeta:    []models.SEOIndexable{},
		})
	}
	return posts
}

// ShapePost merges a single post row with its structured terms and SEO
// records for the detail view.
func ShapePost(row db.PostRow, categories, tags []TermRef, seo []models.SEOIndexable) Post {
	if seo == nil {
		seo = []models.SEOIndexable{}
	}
	return Post{
		PostRow:      row,
		ThumbnailURL: row.ThumbnailURL.String,
		AuthorName:   row.AuthorName.String,
		Categories:   categories,
		Tags:         tags,
		YoastMeta:    seo,
	}
}

// TopCategories truncates ranked categories to the top n after ranking.
// The input is expected already ordered by descending post count with
// ascending id breaking ties; the sort here restores that order when a
// caller passes unranked rows.
func TopCategories(rows []db.CategoryCountRow, n int) []db.CategoryCountRow {
	sorted := make([]db.CategoryCountRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].PostCount != sorted[b].PostCount {
			return sorted[a].PostCount > sorted[b].PostCount
		}
		return sorted[a].ID < sorted[b].ID
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func seoFor(byPost map[int64][]models.SEOIndexable, id int64) []models.SEOIndexable {
	if records, ok := byPost[id]; ok {
		return records
	}
	return []models.SEOIndexable{}
}

func seoByPost(records []models.SEOIndexable) map[int64][]models.SEOIndexable {
	byPost := make(map[int64][]models.SEOIndexable, len(records))
	for _, record := range records {
		byPost[record.ObjectID] = append(byPost[record.ObjectID], record)
	}
	return byPost
}
