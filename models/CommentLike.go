package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentLike is the comment-scoped counterpart of Like, with the same
// idempotent insert/delete semantics over the (user_id, comment_id) pair.
type CommentLike struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_likes_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_likes_user_comment;index" json:"comment_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (cl *CommentLike) SaveCommentLike(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cl).Error
}

func (cl *CommentLike) DeleteCommentLike(db *gorm.DB) error {
	return db.Where("user_id = ? AND comment_id = ?", cl.UserID, cl.CommentID).Delete(&CommentLike{}).Error
}

func (cl *CommentLike) CountForComment(db *gorm.DB, commentID uint) (int64, error) {
	var count int64
	err := db.Model(&CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}
