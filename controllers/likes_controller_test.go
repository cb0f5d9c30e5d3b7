package controllers

import (
	"net/http"
	"testing"
	"time"

	"Recipegram/models"

	"github.com/stretchr/testify/assert"
)

func TestLikePostIsIdempotent(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	post := createTestPost(t, server.DB, user.ID, time.Now())

	body := map[string]interface{}{"user_id": user.ID, "post_id": post.ID}

	first := performRequest(t, server.Router, http.MethodPost, "/reellikeunlike", body)
	second := performRequest(t, server.Router, http.MethodPost, "/reellikeunlike", body)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)

	like := models.Like{}
	count, err := like.CountForPost(server.DB, post.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnlikePostNeverLikedSucceeds(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	post := createTestPost(t, server.DB, user.ID, time.Now())

	w := performRequest(t, server.Router, http.MethodDelete, "/reellikeunlike",
		map[string]interface{}{"user_id": user.ID, "post_id": post.ID})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	decodeBody(t, w, &response)
	assert.Equal(t, true, response["success"])

	var count int64
	server.DB.Model(&models.Like{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLikeThenUnlikePost(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	post := createTestPost(t, server.DB, user.ID, time.Now())

	body := map[string]interface{}{"user_id": user.ID, "post_id": post.ID}
	performRequest(t, server.Router, http.MethodPost, "/reellikeunlike", body)
	w := performRequest(t, server.Router, http.MethodDelete, "/reellikeunlike", body)
	assert.Equal(t, http.StatusOK, w.Code)

	like := models.Like{}
	count, err := like.CountForPost(server.DB, post.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLikePostRequiresUserAndPost(t *testing.T) {
	server := newTestServer(t)

	w := performRequest(t, server.Router, http.MethodPost, "/reellikeunlike",
		map[string]interface{}{"post_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, server.Router, http.MethodPost, "/reellikeunlike",
		map[string]interface{}{"user_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	server.DB.Model(&models.Like{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLikeCommentIsIdempotent(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	post := createTestPost(t, server.DB, user.ID, time.Now())
	comment := createTestComment(t, server.DB, user.ID, post.ID, nil, "lovely", time.Now())

	body := map[string]interface{}{"user_id": user.ID, "comment_id": comment.ID}
	first := performRequest(t, server.Router, http.MethodPost, "/commentlikeunlike", body)
	second := performRequest(t, server.Router, http.MethodPost, "/commentlikeunlike", body)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)

	like := models.CommentLike{}
	count, err := like.CountForComment(server.DB, comment.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnlikeCommentNeverLikedSucceeds(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	post := createTestPost(t, server.DB, user.ID, time.Now())
	comment := createTestComment(t, server.DB, user.ID, post.ID, nil, "lovely", time.Now())

	w := performRequest(t, server.Router, http.MethodDelete, "/commentlikeunlike",
		map[string]interface{}{"user_id": user.ID, "comment_id": comment.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	decodeBody(t, w, &response)
	assert.Equal(t, "Comment unliked", response["message"])
}
