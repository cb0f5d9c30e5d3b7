package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Follower is a directed edge: follower_id follows following_id. The pair is
// unique and self-edges are additionally rejected by a CHECK constraint
// ensured at startup.
type Follower struct {
	ID          uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_followers_unique;index" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_followers_unique;index" json:"following_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Follower) SaveFollower(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&f).Error
}

func (f *Follower) DeleteFollower(db *gorm.DB) error {
	return db.Where("follower_id = ? AND following_id = ?", f.FollowerID, f.FollowingID).
		Delete(&Follower{}).Error
}

func (f *Follower) IsFollowing(db *gorm.DB, followerID, followingID uint) (bool, error) {
	var count int64
	err := db.Model(&Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}
