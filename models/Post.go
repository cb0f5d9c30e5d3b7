package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	MediaURL  string    `gorm:"size:512;not null" json:"media_url"`
	Caption   string    `gorm:"type:text" json:"caption"`
	Recipe    string    `gorm:"type:text" json:"recipe"`
	Author    User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (p *Post) Prepare() {
	p.ID = 0
	p.MediaURL = strings.TrimSpace(p.MediaURL)
	p.Caption = strings.TrimSpace(p.Caption)
	p.Recipe = strings.TrimSpace(p.Recipe)
	p.Author = User{}
	p.CreatedAt = time.Now()
}

func (p *Post) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if p.UserID == 0 {
		errorMessages["Required_user"] = "userID is required"
	}
	if p.MediaURL == "" {
		errorMessages["Required_video"] = "video URL is required"
	}
	return errorMessages
}

// SavePost persists the row. The media URL is assumed to already point at
// durably stored content; the CDN upload happens before this call.
func (p *Post) SavePost(db *gorm.DB) (*Post, error) {
	if err := db.Create(&p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// FeedRow is one entry of the following feed: a post joined with its author
// and annotated with distinct like/comment counts and the viewer's like flag.
// Counts scan into int64 so they always serialize as plain JSON numbers.
type FeedRow struct {
	PostID       uint      `gorm:"column:post_id" json:"post_id"`
	MediaURL     string    `gorm:"column:media_url" json:"media_url"`
	Caption      string    `gorm:"column:caption" json:"caption"`
	Recipe       string    `gorm:"column:recipe" json:"recipe"`
	Username     string    `gorm:"column:username" json:"username"`
	ProfileImage string    `gorm:"column:profile_image" json:"profile_image"`
	Likes        int64     `gorm:"column:likes" json:"likes"`
	Comments     int64     `gorm:"column:comments" json:"comments"`
	UserLike     bool      `gorm:"column:userlike" json:"userlike"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// FollowingFeed composes the personalized feed: posts authored by accounts the
// viewer follows, newest first. The left joins coalesce to zero counts through
// COUNT over the grouped rows, so a post with no engagement reports 0, never
// null. A viewer following nobody gets an empty slice.
func (p *Post) FollowingFeed(db *gorm.DB, viewerID uint) ([]FeedRow, error) {
	rows := []FeedRow{}
	err := db.Raw(`
		SELECT
			p.id AS post_id,
			p.media_url,
			p.caption,
			p.recipe,
			p.created_at,
			u.name AS username,
			u.image AS profile_image,
			COUNT(DISTINCT l.id) AS likes,
			COUNT(DISTINCT c.id) AS comments,
			EXISTS (SELECT 1 FROM likes WHERE user_id = ? AND post_id = p.id) AS userlike
		FROM posts p
		JOIN users u ON p.user_id = u.id
		JOIN followers f ON f.following_id = p.user_id
		LEFT JOIN likes l ON p.id = l.post_id
		LEFT JOIN comments c ON p.id = c.post_id
		WHERE f.follower_id = ?
		GROUP BY p.id, p.media_url, p.caption, p.recipe, p.created_at, u.name, u.image
		ORDER BY p.created_at DESC`,
		viewerID, viewerID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
