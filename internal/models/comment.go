package models

import "time"

// Comment represents a row in wp_comments. Only rows with
// comment_approved = '1' are ever returned by the API.
type Comment struct {
	CommentID          int64     `gorm:"primaryKey;autoIncrement;column:comment_ID" json:"comment_ID"`
	CommentPostID      int64     `gorm:"column:comment_post_ID" json:"comment_post_ID"`
	CommentAuthor      string    `gorm:"type:tinytext;column:comment_author" json:"comment_author"`
	CommentAuthorEmail string    `gorm:"type:varchar(100);column:comment_author_email" json:"comment_author_email"`
	CommentAuthorURL   string    `gorm:"type:varchar(200);column:comment_author_url" json:"comment_author_url"`
	CommentDate        time.Time `gorm:"column:comment_date" json:"comment_date"`
	CommentDateGMT     time.Time `gorm:"column:comment_date_gmt" json:"comment_date_gmt"`
	CommentContent     string    `gorm:"type:text;column:comment_content" json:"comment_content"`
	CommentKarma       int       `gorm:"column:comment_karma" json:"comment_karma"`
	CommentApproved    string    `gorm:"type:varchar(20);column:comment_approved" json:"comment_approved"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "wp_comments"
}
