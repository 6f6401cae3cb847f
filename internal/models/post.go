package models

import "time"

// Post represents a row in wp_posts. Attachments (thumbnails) live in the
// same table with post_type = 'attachment'.
type Post struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:ID"`
	PostAuthor    int64     `gorm:"column:post_author"`
	PostDate      time.Time `gorm:"column:post_date"`
	PostDateGMT   time.Time `gorm:"column:post_date_gmt"`
	PostContent   string    `gorm:"type:longtext;column:post_content"`
	PostTitle     string    `gorm:"type:text;column:post_title"`
	PostExcerpt   string    `gorm:"type:text;column:post_excerpt"`
	PostStatus    string    `gorm:"type:varchar(20);column:post_status"`
	CommentStatus string    `gorm:"type:varchar(20);column:comment_status"`
	PingStatus    string    `gorm:"type:varchar(20);column:ping_status"`
	PostName      string    `gorm:"type:varchar(200);column:post_name"`
	PostModified  time.Time `gorm:"column:post_modified"`
	PostParent    int64     `gorm:"column:post_parent"`
	GUID          string    `gorm:"type:varchar(255);column:guid"`
	PostType      string    `gorm:"type:varchar(20);column:post_type"`
	CommentCount  int64     `gorm:"column:comment_count"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "wp_posts"
}
