package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Author    User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (c *Comment) Prepare() {
	c.ID = 0
	c.Text = strings.TrimSpace(c.Text)
	c.Author = User{}
	c.CreatedAt = time.Now()
}

func (c *Comment) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if c.UserID == 0 {
		errorMessages["Required_user"] = "user_id is required"
	}
	if c.PostID == 0 {
		errorMessages["Required_post"] = "post_id is required"
	}
	if c.Text == "" {
		errorMessages["Required_text"] = "text is required"
	}
	return errorMessages
}

func (c *Comment) SaveComment(db *gorm.DB) (*Comment, error) {
	if err := db.Create(&c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// CommentRow is a comment annotated with its author's identity, live counts
// and the viewer's like flag. ReplyCount is only populated for top-level
// comments; reply listings never recurse below one level.
type CommentRow struct {
	ID           uint      `gorm:"column:id" json:"id"`
	UserID       uint      `gorm:"column:user_id" json:"user_id"`
	PostID       uint      `gorm:"column:post_id" json:"post_id"`
	Text         string    `gorm:"column:text" json:"text"`
	ParentID     *uint     `gorm:"column:parent_id" json:"parent_id"`
	Username     string    `gorm:"column:username" json:"username"`
	ProfileImage string    `gorm:"column:profile_image" json:"profile_image"`
	ReplyCount   int64     `gorm:"column:reply_count" json:"reply_count,omitempty"`
	Likes        int64     `gorm:"column:likes" json:"likes"`
	UserLike     bool      `gorm:"column:userlike" json:"userlike"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TopLevelForPost lists the comments of a post whose parent_id is null,
// oldest first, each carrying a live direct-reply count, a live like count and
// the viewer's like flag. A nil viewer makes userlike false for every row.
func (c *Comment) TopLevelForPost(db *gorm.DB, postID uint, viewerID *uint) ([]CommentRow, error) {
	rows := []CommentRow{}
	err := db.Raw(`
		SELECT
			c.id,
			c.user_id,
			c.post_id,
			c.text,
			c.parent_id,
			c.created_at,
			u.name AS username,
			u.image AS profile_image,
			(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id) AS reply_count,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS likes,
			EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = c.id AND user_id = ?) AS userlike
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = ? AND c.parent_id IS NULL
		ORDER BY c.created_at ASC`,
		viewerArg(viewerID), postID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RepliesFor lists the direct children of a parent comment, oldest first.
// Reply counts are deliberately not computed here: only one level below a
// top-level comment is ever surfaced.
func (c *Comment) RepliesFor(db *gorm.DB, parentID uint, viewerID *uint) ([]CommentRow, error) {
	rows := []CommentRow{}
	err := db.Raw(`
		SELECT
			c.id,
			c.user_id,
			c.post_id,
			c.text,
			c.parent_id,
			c.created_at,
			u.name AS username,
			u.image AS profile_image,
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS likes,
			EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = c.id AND user_id = ?) AS userlike
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.parent_id = ?
		ORDER BY c.created_at ASC`,
		viewerArg(viewerID), parentID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// viewerArg maps an absent viewer to SQL NULL so EXISTS checks evaluate false
// instead of erroring.
func viewerArg(viewerID *uint) interface{} {
	if viewerID == nil {
		return nil
	}
	return *viewerID
}
