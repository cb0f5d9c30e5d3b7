package seed

import (
	"log"

	"Recipegram/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{
		Name:  "amelia",
		Email: "amelia@example.com",
		Image: "https://cdn.example.com/avatars/amelia.png",
	},
	{
		Name:  "jonas",
		Email: "jonas@example.com",
		Image: "https://cdn.example.com/avatars/jonas.png",
	},
	{
		Name:  "priya",
		Email: "priya@example.com",
		Image: "https://cdn.example.com/avatars/priya.png",
	},
}

var posts = []models.Post{
	{
		MediaURL: "https://cdn.example.com/reels/shakshuka.mp4",
		Caption:  "Weeknight shakshuka",
		Recipe:   "4 eggs, 1 can tomatoes, 1 onion, paprika, cumin. Simmer sauce, crack eggs in, cover 6 min.",
	},
	{
		MediaURL: "https://cdn.example.com/reels/dan-dan-noodles.mp4",
		Caption:  "Dan dan noodles from scratch",
		Recipe:   "Fresh noodles, sichuan chili oil, ground pork, preserved mustard greens.",
	},
	{
		MediaURL: "https://cdn.example.com/reels/focaccia.mp4",
		Caption:  "No-knead overnight focaccia",
		Recipe:   "500g flour, 400g water, 10g salt, 4g yeast. 18h cold ferment, dimple with olive oil.",
	},
}

// Load fills an empty development database with a few users, posts and a
// small follow/comment graph. Existing rows are left alone; the idempotent
// inserts make repeat runs harmless.
func Load(db *gorm.DB) {
	for i := range users {
		saved, err := users[i].SaveUser(db)
		if err != nil {
			log.Fatalf("cannot seed users table: %v", err)
		}
		users[i] = *saved
	}

	for i := range posts {
		var count int64
		if err := db.Model(&models.Post{}).
			Where("user_id = ? AND media_url = ?", users[i].ID, posts[i].MediaURL).
			Count(&count).Error; err != nil {
			log.Fatalf("cannot check posts table: %v", err)
		}
		if count > 0 {
			continue
		}
		posts[i].UserID = users[i].ID
		if _, err := posts[i].SavePost(db); err != nil {
			log.Fatalf("cannot seed posts table: %v", err)
		}
	}

	follows := []models.Follower{
		{FollowerID: users[0].ID, FollowingID: users[1].ID},
		{FollowerID: users[0].ID, FollowingID: users[2].ID},
		{FollowerID: users[1].ID, FollowingID: users[0].ID},
	}
	for i := range follows {
		if err := follows[i].SaveFollower(db); err != nil {
			log.Fatalf("cannot seed followers table: %v", err)
		}
	}

	log.Printf("seeded %d users, %d posts, %d follows", len(users), len(posts), len(follows))
}
