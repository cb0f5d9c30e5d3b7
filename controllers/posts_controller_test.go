package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"Recipegram/models"

	"github.com/stretchr/testify/assert"
)

func TestCreatePostReturnsCreatedRow(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")

	w := performRequest(t, server.Router, http.MethodPost, "/upload", map[string]interface{}{
		"userID":  user.ID,
		"video":   "https://cdn.example.com/reels/shakshuka.mp4",
		"caption": "Weeknight shakshuka",
		"recipe":  "4 eggs, 1 can tomatoes",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var created models.Post
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, "https://cdn.example.com/reels/shakshuka.mp4", created.MediaURL)
	assert.Equal(t, "4 eggs, 1 can tomatoes", created.Recipe)
}

func TestCreatePostRequiresUserAndVideo(t *testing.T) {
	server := newTestServer(t)

	w := performRequest(t, server.Router, http.MethodPost, "/upload",
		map[string]interface{}{"video": "https://cdn.example.com/reel.mp4"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, server.Router, http.MethodPost, "/upload",
		map[string]interface{}{"userID": 1, "caption": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	server.DB.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFollowingFeedOnlyFollowedAuthorsNewestFirst(t *testing.T) {
	server := newTestServer(t)
	viewer := createTestUser(t, server.DB, "viewer", "viewer@example.com")
	alice := createTestUser(t, server.DB, "alice", "alice@example.com")
	bob := createTestUser(t, server.DB, "bob", "bob@example.com")
	carol := createTestUser(t, server.DB, "carol", "carol@example.com")

	for _, followed := range []uint{alice.ID, bob.ID} {
		edge := models.Follower{FollowerID: viewer.ID, FollowingID: followed}
		assert.NoError(t, edge.SaveFollower(server.DB))
	}

	base := time.Now().Add(-time.Hour)
	a1 := createTestPost(t, server.DB, alice.ID, base)
	a2 := createTestPost(t, server.DB, alice.ID, base.Add(30*time.Minute))
	b1 := createTestPost(t, server.DB, bob.ID, base.Add(10*time.Minute))
	createTestPost(t, server.DB, carol.ID, base.Add(20*time.Minute))

	// Engagement on the oldest post only; the others must report zeros.
	like := models.Like{UserID: viewer.ID, PostID: a1.ID}
	assert.NoError(t, like.SaveLike(server.DB))
	createTestComment(t, server.DB, bob.ID, a1.ID, nil, "nice", base.Add(time.Minute))
	createTestComment(t, server.DB, viewer.ID, a1.ID, nil, "agreed", base.Add(2*time.Minute))

	w := performRequest(t, server.Router, http.MethodGet,
		fmt.Sprintf("/followingreels?user_id=%d", viewer.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []models.FeedRow
	decodeBody(t, w, &rows)

	if assert.Len(t, rows, 3) {
		assert.Equal(t, a2.ID, rows[0].PostID)
		assert.Equal(t, b1.ID, rows[1].PostID)
		assert.Equal(t, a1.ID, rows[2].PostID)

		assert.Equal(t, int64(0), rows[0].Likes)
		assert.Equal(t, int64(0), rows[0].Comments)
		assert.False(t, rows[0].UserLike)

		assert.Equal(t, int64(1), rows[2].Likes)
		assert.Equal(t, int64(2), rows[2].Comments)
		assert.True(t, rows[2].UserLike)
		assert.Equal(t, "alice", rows[2].Username)
	}
}

func TestFollowingFeedEmptyWhenFollowingNobody(t *testing.T) {
	server := newTestServer(t)
	viewer := createTestUser(t, server.DB, "viewer", "viewer@example.com")
	other := createTestUser(t, server.DB, "alice", "alice@example.com")
	createTestPost(t, server.DB, other.ID, time.Now())

	w := performRequest(t, server.Router, http.MethodGet,
		fmt.Sprintf("/followingreels?user_id=%d", viewer.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []models.FeedRow
	decodeBody(t, w, &rows)
	assert.Empty(t, rows)
}

func TestFollowingFeedRequiresViewer(t *testing.T) {
	server := newTestServer(t)
	w := performRequest(t, server.Router, http.MethodGet, "/followingreels", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
