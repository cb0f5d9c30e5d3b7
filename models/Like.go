package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Like marks that a user liked a post. The (user_id, post_id) pair is unique;
// existence is the whole state, no timestamp ordering is relied on.
type Like struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;index" json:"post_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// SaveLike inserts the pair with conflict suppression: liking an already-liked
// post is a silent no-op, which makes the operation safely retriable.
func (l *Like) SaveLike(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&l).Error
}

// DeleteLike removes the pair. Zero rows affected is not an error; unliking
// something never liked is a silent success.
func (l *Like) DeleteLike(db *gorm.DB) error {
	return db.Where("user_id = ? AND post_id = ?", l.UserID, l.PostID).Delete(&Like{}).Error
}

func (l *Like) CountForPost(db *gorm.DB, postID uint) (int64, error) {
	var count int64
	err := db.Model(&Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
