package models

// SEOIndexable represents a row in wp_yoast_indexable, the one-to-one SEO
// metadata record attached to a post. Nullable columns map to pointers so
// the serialized payload carries null rather than a wrapper object.
type SEOIndexable struct {
	ID                   int64   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ObjectID             int64   `gorm:"column:object_id" json:"object_id"`
	ObjectType           string  `gorm:"type:varchar(32);column:object_type" json:"-"`
	PostStatus           *string `gorm:"type:varchar(20);column:post_status" json:"-"`
	Permalink            *string `gorm:"type:longtext;column:permalink" json:"permalink"`
	Title                *string `gorm:"type:text;column:title" json:"title"`
	Description          *string `gorm:"type:longtext;column:description" json:"description"`
	BreadcrumbTitle      *string `gorm:"type:text;column:breadcrumb_title" json:"breadcrumb_title"`
	IsPublic             *bool   `gorm:"column:is_public" json:"is_public"`
	Canonical            *string `gorm:"type:longtext;column:canonical" json:"canonical"`
	PrimaryFocusKeyword  *string `gorm:"type:varchar(191);column:primary_focus_keyword" json:"primary_focus_keyword"`
	IsRobotsNoindex      *bool   `gorm:"column:is_robots_noindex" json:"is_robots_noindex"`
	IsRobotsNofollow     *bool   `gorm:"column:is_robots_nofollow" json:"is_robots_nofollow"`
	IsRobotsNoarchive    *bool   `gorm:"column:is_robots_noarchive" json:"is_robots_noarchive"`
	IsRobotsNoimageindex *bool   `gorm:"column:is_robots_noimageindex" json:"is_robots_noimageindex"`
	IsRobotsNosnippet    *bool   `gorm:"column:is_robots_nosnippet" json:"is_robots_nosnippet"`
	TwitterTitle         *string `gorm:"type:text;column:twitter_title" json:"twitter_title"`
	TwitterImage         *string `gorm:"type:longtext;column:twitter_image" json:"twitter_image"`
	TwitterDescription   *string `gorm:"type:longtext;column:twitter_description" json:"twitter_description"`
	OpenGraphTitle       *string `gorm:"type:text;column:open_graph_title" json:"open_graph_title"`
	OpenGraphDescription *string `gorm:"type:longtext;column:open_graph_description" json:"open_graph_description"`
	OpenGraphImage       *string `gorm:"type:longtext;column:open_graph_image" json:"open_graph_image"`
	OpenGraphImageMeta   *string `gorm:"type:mediumtext;column:open_graph_image_meta" json:"open_graph_image_meta"`
	SchemaArticleType    *string `gorm:"type:varchar(64);column:schema_article_type" json:"schema_article_type"`
	SchemaPageType       *string `gorm:"type:varchar(64);column:schema_page_type" json:"schema_page_type"`
}

// TableName specifies the table name for SEOIndexable
func (SEOIndexable) TableName() string {
	return "wp_yoast_indexable"
}
