package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"Recipegram/security"

	"github.com/badoux/checkmail"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type User struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Image     string    `gorm:"size:512" json:"image"`
	Password  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

var ErrUserNotFound = errors.New("user not found")

func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	// Accounts created through the external identity provider carry no password.
	if u.Password == "" || security.IsHashed(u.Password) {
		return nil
	}
	hashed, err := security.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) Prepare() {
	u.Name = html.EscapeString(strings.TrimSpace(u.Name))
	u.Email = html.EscapeString(strings.ToLower(strings.TrimSpace(u.Email)))
	u.Image = strings.TrimSpace(u.Image)
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
}

func (u *User) Validate(action string) map[string]string {
	var errorMessages = make(map[string]string)

	switch strings.ToLower(action) {
	case "login":
		if u.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	default:
		if u.Name == "" {
			errorMessages["Required_name"] = "Required Name"
		}
		if u.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	}
	return errorMessages
}

// SaveUser inserts the user. A duplicate email is not an error: the insert is
// conflict-suppressed and the pre-existing row is fetched and returned instead,
// so registration stays idempotent per email.
func (u *User) SaveUser(db *gorm.DB) (*User, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		existing := User{}
		if err := db.Where("email = ?", u.Email).Take(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return u, nil
}

func (u *User) FindAllUsers(db *gorm.DB) (*[]User, error) {
	var users []User
	err := db.Limit(100).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}

func (u *User) FindUserByID(db *gorm.DB, uid uint) (*User, error) {
	var user User
	err := db.Where("id = ?", uid).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *User) FindUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfilePost is the trimmed post shape embedded in a profile response.
type ProfilePost struct {
	ID       uint   `gorm:"column:id" json:"id"`
	MediaURL string `gorm:"column:media_url" json:"media_url"`
}

// Profile is the aggregate returned for a display-name lookup. Every count is
// recomputed from the underlying rows at read time; nothing here is stored.
type Profile struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Image       string        `json:"image"`
	Followers   int64         `json:"followers"`
	Following   int64         `json:"following"`
	Posts       int64         `json:"posts"`
	UserPosts   []ProfilePost `json:"user_posts"`
	IsFollowing bool          `json:"is_following"`
}

// GetProfile resolves a user by display name and annotates the record with
// live follower/following/post counts and the viewer's follow flag. A nil
// viewer yields is_following = false rather than an error.
func (u *User) GetProfile(db *gorm.DB, name string, viewerID *uint) (*Profile, error) {
	var user User
	err := db.Where("name = ?", name).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile := Profile{
		ID:        user.ID,
		Name:      user.Name,
		Image:     user.Image,
		UserPosts: []ProfilePost{},
	}

	if err := db.Model(&Follower{}).Where("following_id = ?", user.ID).Count(&profile.Followers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Follower{}).Where("follower_id = ?", user.ID).Count(&profile.Following).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Post{}).Where("user_id = ?", user.ID).Count(&profile.Posts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Post{}).
		Select("id", "media_url").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Scan(&profile.UserPosts).Error; err != nil {
		return nil, err
	}

	if viewerID != nil {
		var count int64
		if err := db.Model(&Follower{}).
			Where("follower_id = ? AND following_id = ?", *viewerID, user.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		profile.IsFollowing = count > 0
	}

	return &profile, nil
}
