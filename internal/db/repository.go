package db

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/tech2globe/blogapi/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PostRow is a published post joined with its thumbnail attachment and
// author display name.
type PostRow struct {
	ID            int64          `gorm:"column:id" json:"ID"`
	PostAuthor    int64          `gorm:"column:post_author" json:"post_author"`
	PostDate      time.Time      `gorm:"column:post_date" json:"post_date"`
	PostModified  time.Time      `gorm:"column:post_modified" json:"post_modified"`
	PostContent   string         `gorm:"column:post_content" json:"post_content"`
	PostTitle     string         `gorm:"column:post_title" json:"post_title"`
	PostExcerpt   string         `gorm:"column:post_excerpt" json:"post_excerpt"`
	PostStatus    string         `gorm:"column:post_status" json:"post_status"`
	CommentStatus string         `gorm:"column:comment_status" json:"comment_status"`
	PingStatus    string         `gorm:"column:ping_status" json:"ping_status"`
	PostName      string         `gorm:"column:post_name" json:"post_name"`
	CommentCount  int64          `gorm:"column:comment_count" json:"comment_count"`
	ThumbnailURL  sql.NullString `gorm:"column:thumbnail_url" json:"-"`
	AuthorName    sql.NullString `gorm:"column:author_name" json:"-"`
}

// RecentPostRow carries the single-query shape used by the recent and
// related endpoints, with categories and tags pre-joined as comma strings.
type RecentPostRow struct {
	PostRow
	Categories sql.NullString `gorm:"column:categories" json:"-"`
	Tags       sql.NullString `gorm:"column:tags" json:"-"`
}

// SearchRow is the reduced projection fed to the fuzzy search index.
type SearchRow struct {
	ID      int64  `gorm:"column:id" json:"ID"`
	Title   string `gorm:"column:post_title" json:"post_title"`
	Excerpt string `gorm:"column:post_excerpt" json:"post_excerpt"`
	Slug    string `gorm:"column:slug" json:"slug"`
}

// TermConcatRow holds a per-post GROUP_CONCAT of term name:slug pairs.
type TermConcatRow struct {
	PostID int64          `gorm:"column:id"`
	Terms  sql.NullString `gorm:"column:terms"`
}

// TermRow is a single structured term attached to a post.
type TermRow struct {
	Name string `gorm:"column:name"`
	Slug string `gorm:"column:slug"`
}

// AuthorRow is a user joined with its pivoted social-handle meta rows.
type AuthorRow struct {
	ID          int64          `gorm:"column:id"`
	DisplayName string         `gorm:"column:display_name"`
	Website     sql.NullString `gorm:"column:website"`
	Email       string         `gorm:"column:email"`
	Description sql.NullString `gorm:"column:description"`
	Facebook    sql.NullString `gorm:"column:facebook"`
	Instagram   sql.NullString `gorm:"column:instagram"`
	LinkedIn    sql.NullString `gorm:"column:linkedin"`
	Tumblr      sql.NullString `gorm:"column:tumblr"`
	Twitter     sql.NullString `gorm:"column:twitter"`
	YouTube     sql.NullString `gorm:"column:youtube"`
	Wikipedia   sql.NullString `gorm:"column:wikipedia"`
	Pinterest   sql.NullString `gorm:"column:pinterest"`
}

// CategoryCountRow is a category ranked by its published post count.
type CategoryCountRow struct {
	ID        int64  `gorm:"column:id" json:"id"`
	Name      string `gorm:"column:name" json:"name"`
	Slug      string `gorm:"column:slug" json:"slug"`
	PostCount int64  `gorm:"column:post_count" json:"post_count"`
}

const postSelect = `
	SELECT p.ID AS id, p.post_author, p.post_date, p.post_modified, p.post_content,
	       p.post_title, p.post_excerpt, p.post_status, p.comment_status, p.ping_status,
	       p.post_name, p.comment_count,
	       MAX(t.guid) AS thumbnail_url,
	       MAX(u.display_name) AS author_name
	FROM wp_posts p
	LEFT JOIN wp_postmeta pm ON p.ID = pm.post_id AND pm.meta_key = '_thumbnail_id'
	LEFT JOIN wp_posts t ON pm.meta_value = t.ID AND t.post_type = 'attachment'
	LEFT JOIN wp_users u ON p.post_author = u.ID`

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// ListPublished retrieves a page of published posts, newest first.
func (r *PostRepository) ListPublished(ctx context.Context, limit, offset int) ([]PostRow, error) {
	var rows []PostRow
	err := r.db.WithContext(ctx).Raw(postSelect+`
		WHERE p.post_type = 'post' AND p.post_status = 'publish'
		GROUP BY p.ID
		ORDER BY p.post_date DESC
		LIMIT ? OFFSET ?`, limit, offset).Scan(&rows).Error
	return rows, wrapErr("list published posts", err)
}

// CountPublished counts all published posts.
func (r *PostRepository) CountPublished(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("post_type = 'post' AND post_status = 'publish'").
		Count(&total).Error
	return total, wrapErr("count published posts", err)
}

// ListByAuthor retrieves a page of published posts by author ID.
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]PostRow, error) {
	var rows []PostRow
	err := r.db.WithContext(ctx).Raw(postSelect+`
		WHERE p.post_type = 'post' AND p.post_status = 'publish' AND p.post_author = ?
		GROUP BY p.ID
		ORDER BY p.post_date DESC
		LIMIT ? OFFSET ?`, authorID, limit, offset).Scan(&rows).Error
	return rows, wrapErr("list posts by author", err)
}

// CountByAuthor counts published posts by author ID.
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("post_type = 'post' AND post_status = 'publish' AND post_author = ?", authorID).
		Count(&total).Error
	return total, wrapErr("count posts by author", err)
}

// ListByCategorySlug retrieves a page of published posts in a category.
func (r *PostRepository) ListByCategorySlug(ctx context.Context, slug string, limit, offset int) ([]PostRow, error) {
	var rows []PostRow
	err := r.db.WithContext(ctx).Raw(postSelect+`
		LEFT JOIN wp_term_relationships tr ON p.ID = tr.object_id
		LEFT JOIN wp_term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id
		LEFT JOIN wp_terms cat_terms ON tt.term_id = cat_terms.term_id
		WHERE p.post_type = 'post' AND p.post_status = 'publish' AND cat_terms.slug = ?
		GROUP BY p.ID
		ORDER BY p.post_date DESC
		LIMIT ? OFFSET ?`, slug, limit, offset).Scan(&rows).Error
	return rows, wrapErr("list posts by category", err)
}

// CountByCategorySlug counts published posts in a category.
func (r *PostRepository) CountByCategorySlug(ctx context.Context, slug string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(DISTINCT p.ID)
		 FROM wp_posts p
		 LEFT JOIN wp_term_relationships tr ON p.ID = tr.object_id
		 LEFT JOIN wp_term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id
		 LEFT JOIN wp_terms cat_terms ON tt.term_id = cat_terms.term_id
		 WHERE p.post_type = 'post' AND p.post_status = 'publish' AND cat_terms.slug = ?`, slug,
	).Scan(&total).Error
	return total, wrapErr("count posts by category", err)
}

// GetBySlug retrieves a published post by slug. Returns nil when no post
// matches.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*PostRow, error) {
	var rows []PostRow
	err := r.db.WithContext(ctx).Raw(postSelect+`
		WHERE p.post_name = ? AND p.post_type = 'post' AND p.post_status = 'publish'
		GROUP BY p.ID`, slug).Scan(&rows).Error
	if err != nil {
		return nil, wrapErr("get post by slug", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// recentSelect is the single-query projection used by the recent and
// related endpoints. Categories and tags come back comma-joined with the
// GROUP_CONCAT default separator, names only; consumers split the string.
const recentSelect = `
	SELECT p.ID AS id, p.post_author, p.post_date, p.post_modified, p.post_content,
	       p.post_title, p.post_excerpt, p.post_status, p.comment_status, p.ping_status,
	       p.post_name, p.comment_count,
	       MAX(t.guid) AS thumbnail_url,
	       MAX(u.display_name) AS author_name,
	       GROUP_CONCAT(DISTINCT cat_terms.name) AS categories,
	       GROUP_CONCAT(DISTINCT tag_terms.name) AS tags
	FROM wp_posts p
	LEFT JOIN wp_postmeta pm ON p.ID = pm.post_id AND pm.meta_key = '_thumbnail_id'
	LEFT JOIN wp_posts t ON pm.meta_value = t.ID AND t.post_type = 'attachment'
	LEFT JOIN wp_users u ON p.post_author = u.ID
	LEFT JOIN wp_term_relationships cat_tr ON p.ID = cat_tr.object_id
	LEFT JOIN wp_term_taxonomy cat_tt ON cat_tr.term_taxonomy_id = cat_tt.term_taxonomy_id AND cat_tt.taxonomy = 'category'
	LEFT JOIN wp_terms cat_terms ON cat_tt.term_id = cat_terms.term_id
	LEFT JOIN wp_term_relationships tag_tr ON p.ID = tag_tr.object_id
	LEFT JOIN wp_term_taxonomy tag_tt ON tag_tr.term_taxonomy_id = tag_tt.term_taxonomy_id AND tag_tt.taxonomy = 'post_tag'
	LEFT JOIN wp_terms tag_terms ON tag_tt.term_id = tag_terms.term_id`

// Recent retrieves the n most recent published posts with categories and
// tags pre-joined as comma strings.
func (r *PostRepository) Recent(ctx context.Context, n int) ([]RecentPostRow, error) {
	var rows []RecentPostRow
	err := r.db.WithContext(ctx).Raw(recentSelect+`
		WHERE p.post_type = 'post' AND p.post_status = 'publish'
		GROUP BY p.ID
		ORDER BY p.post_date DESC
		LIMIT ?`, n).Scan(&rows).Error
	return rows, wrapErr("list recent posts", err)
}

// RelatedByCategoryName retrieves the n newest published posts in the named
// category. Returns ErrTermNotFound when the category does not resolve.
func (r *PostRepository) RelatedByCategoryName(ctx context.Context, categoryName string, n int) ([]RecentPostRow, error) {
	var termIDs []int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT term_id FROM wp_terms WHERE name = ?`, categoryName,
	).Scan(&termIDs).Error
	if err != nil {
		return nil, wrapErr("resolve category term", err)
	}
	if len(termIDs) == 0 {
		return nil, ErrTermNotFound
	}

	var rows []RecentPostRow
	err = r.db.WithContext(ctx).Raw(recentSelect+`
		WHERE p.post_type = 'post' AND p.post_status = 'publish' AND cat_tt.term_id = ?
		GROUP BY p.ID
		ORDER BY p.post_date DESC
		LIMIT ?`, termIDs[0], n).Scan(&rows).Error
	return rows, wrapErr("list related posts", err)
}

// SearchCorpus retrieves title, excerpt and slug of every published post
// for the in-memory fuzzy index.
func (r *PostRepository) SearchCorpus(ctx context.Context) ([]SearchRow, error) {
	var rows []SearchRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ID AS id, post_title, post_excerpt, post_name AS slug
		FROM wp_posts
		WHERE post_type = 'post' AND post_status = 'publish'`).Scan(&rows).Error
	return rows, wrapErr("load search corpus", err)
}

// TermRepository provides category and tag database operations
type TermRepository struct {
	*Repository
}

// NewTermRepository creates a new term repository
func NewTermRepository(repo *Repository) *TermRepository {
	return &TermRepository{Repository: repo}
}

func (r *TermRepository) concatForPosts(ctx context.Context, ids []int64, taxonomy string) ([]TermConcatRow, error) {
	if len(ids) == 0 {
		return []TermConcatRow{}, nil
	}
	var rows []TermConcatRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.ID AS id,
		       GROUP_CONCAT(DISTINCT CONCAT(terms.name, ':', terms.slug) SEPARATOR ', ') AS terms
		FROM wp_term_relationships tr
		JOIN wp_term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id
		JOIN wp_terms terms ON tt.term_id = terms.term_id
		JOIN wp_posts p ON tr.object_id = p.ID
		WHERE p.ID IN ? AND tt.taxonomy = ?
		GROUP BY p.ID`, ids, taxonomy).Scan(&rows).Error
	return rows, wrapErr("list terms for posts", err)
}

// CategoriesForPosts retrieves per-post category name:slug concatenations.
func (r *TermRepository) CategoriesForPosts(ctx context.Context, ids []int64) ([]TermConcatRow, error) {
	return r.concatForPosts(ctx, ids, "category")
}

// TagsForPosts retrieves per-post tag name:slug concatenations.
func (r *TermRepository) TagsForPosts(ctx context.Context, ids []int64) ([]TermConcatRow, error) {
	return r.concatForPosts(ctx, ids, "post_tag")
}

// TermsForPost retrieves the structured terms of one post under a taxonomy.
func (r *TermRepository) TermsForPost(ctx context.Context, postID int64, taxonomy string) ([]TermRow, error) {
	var rows []TermRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT terms.name, terms.slug
		FROM wp_term_relationships tr
		JOIN wp_term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id AND tt.taxonomy = ?
		JOIN wp_terms terms ON tt.term_id = terms.term_id
		WHERE tr.object_id = ?`, taxonomy, postID).Scan(&rows).Error
	return rows, wrapErr("list terms for post", err)
}

// CategoriesWithCounts retrieves all categories ranked by distinct
// published post count, ties broken by ascending term id.
func (r *TermRepository) CategoriesWithCounts(ctx context.Context) ([]CategoryCountRow, error) {
	var rows []CategoryCountRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.term_id AS id, t.name, t.slug,
		       COUNT(DISTINCT tr.object_id) AS post_count
		FROM wp_terms t
		INNER JOIN wp_term_taxonomy tt ON t.term_id = tt.term_id
		LEFT JOIN wp_term_relationships tr ON tt.term_taxonomy_id = tr.term_taxonomy_id
		LEFT JOIN wp_posts p ON tr.object_id = p.ID AND p.post_status = 'publish'
		WHERE tt.taxonomy = 'category'
		GROUP BY t.term_id, t.name, t.slug
		ORDER BY post_count DESC, t.term_id ASC`).Scan(&rows).Error
	return rows, wrapErr("list categories with counts", err)
}

// Tags retrieves every term that belongs to the post_tag taxonomy.
func (r *TermRepository) Tags(ctx context.Context) ([]models.Term, error) {
	tagTerms := r.db.Model(&models.TermTaxonomy{}).
		Select("term_id").
		Where("taxonomy = 'post_tag'")

	var terms []models.Term
	err := r.db.WithContext(ctx).
		Where("term_id IN (?)", tagTerms).
		Find(&terms).Error
	return terms, wrapErr("list tags", err)
}

const authorSelect = `
	SELECT u.ID AS id, u.display_name, u.user_url AS website, u.user_email AS email,
	       MAX(CASE WHEN pm.meta_key = 'description' THEN pm.meta_value END) AS description,
	       MAX(CASE WHEN pm.meta_key = 'facebook' THEN pm.meta_value END) AS facebook,
	       MAX(CASE WHEN pm.meta_key = 'instagram' THEN pm.meta_value END) AS instagram,
	       MAX(CASE WHEN pm.meta_key = 'linkedin' THEN pm.meta_value END) AS linkedin,
	       MAX(CASE WHEN pm.meta_key = 'tumblr' THEN pm.meta_value END) AS tumblr,
	       MAX(CASE WHEN pm.meta_key = 'twitter' THEN pm.meta_value END) AS twitter,
	       MAX(CASE WHEN pm.meta_key = 'youtube' THEN pm.meta_value END) AS youtube,
	       MAX(CASE WHEN pm.meta_key = 'wikipedia' THEN pm.meta_value END) AS wikipedia,
	       MAX(CASE WHEN pm.meta_key = 'pinterest' THEN pm.meta_value END) AS pinterest
	FROM wp_users u
	LEFT JOIN wp_usermeta pm ON u.ID = pm.user_id`

// UserRepository provides author-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// Authors retrieves every author with its pivoted social-handle meta.
func (r *UserRepository) Authors(ctx context.Context) ([]AuthorRow, error) {
	var rows []AuthorRow
	err := r.db.WithContext(ctx).Raw(authorSelect + `
		GROUP BY u.ID, u.display_name, u.user_url, u.user_email`).Scan(&rows).Error
	return rows, wrapErr("list authors", err)
}

// AuthorByID retrieves a single author by user ID.
func (r *UserRepository) AuthorByID(ctx context.Context, id int64) ([]AuthorRow, error) {
	var rows []AuthorRow
	err := r.db.WithContext(ctx).Raw(authorSelect+`
		WHERE u.ID = ?
		GROUP BY u.ID, u.display_name, u.user_url, u.user_email`, id).Scan(&rows).Error
	return rows, wrapErr("get author by id", err)
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// ApprovedForPost retrieves the approved comments of a post, oldest first.
func (r *CommentRepository) ApprovedForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("comment_post_ID = ? AND comment_approved = '1'", postID).
		Order("comment_date ASC").
		Find(&comments).Error
	return comments, wrapErr("list approved comments", err)
}

// Insert stores a new comment. Callers set comment_approved before the
// insert; there is no moderation queue.
func (r *CommentRepository) Insert(ctx context.Context, comment *models.Comment) error {
	return wrapErr("insert comment", r.db.WithContext(ctx).Create(comment).Error)
}

// SEORepository provides SEO metadata database operations
type SEORepository struct {
	*Repository
}

// NewSEORepository creates a new SEO repository
func NewSEORepository(repo *Repository) *SEORepository {
	return &SEORepository{Repository: repo}
}

// ForPosts retrieves the SEO records of the given published posts.
func (r *SEORepository) ForPosts(ctx context.Context, ids []int64) ([]models.SEOIndexable, error) {
	if len(ids) == 0 {
		return []models.SEOIndexable{}, nil
	}
	var records []models.SEOIndexable
	err := r.db.WithContext(ctx).
		Where("object_id IN ? AND object_type = 'post' AND post_status = 'publish'", ids).
		Find(&records).Error
	return records, wrapErr("list seo records", err)
}

// ForPost retrieves the SEO records of a single post.
func (r *SEORepository) ForPost(ctx context.Context, id int64) ([]models.SEOIndexable, error) {
	var records []models.SEOIndexable
	err := r.db.WithContext(ctx).
		Where("object_id = ? AND object_type = 'post' AND post_status = 'publish'", id).
		Find(&records).Error
	return records, wrapErr("get seo record", err)
}
