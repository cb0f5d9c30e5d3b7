package controllers

import (
	"net/http"
	"testing"

	"Recipegram/models"

	"github.com/stretchr/testify/assert"
)

func TestFollowUserIsIdempotent(t *testing.T) {
	server := newTestServer(t)
	follower := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	followed := createTestUser(t, server.DB, "jonas", "jonas@example.com")

	body := map[string]interface{}{"follower_id": follower.ID, "following_id": followed.ID}
	first := performRequest(t, server.Router, http.MethodPost, "/follow", body)
	second := performRequest(t, server.Router, http.MethodPost, "/follow", body)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)

	var count int64
	server.DB.Model(&models.Follower{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSelfFollowRejected(t *testing.T) {
	server := newTestServer(t)
	user := createTestUser(t, server.DB, "amelia", "amelia@example.com")

	w := performRequest(t, server.Router, http.MethodPost, "/follow",
		map[string]interface{}{"follower_id": user.ID, "following_id": user.ID})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	server.DB.Model(&models.Follower{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUnfollowWithoutEdgeSucceeds(t *testing.T) {
	server := newTestServer(t)
	follower := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	followed := createTestUser(t, server.DB, "jonas", "jonas@example.com")

	w := performRequest(t, server.Router, http.MethodDelete, "/follow",
		map[string]interface{}{"follower_id": follower.ID, "following_id": followed.ID})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	decodeBody(t, w, &response)
	assert.Equal(t, true, response["success"])
}

func TestFollowRequiresBothIDs(t *testing.T) {
	server := newTestServer(t)

	w := performRequest(t, server.Router, http.MethodPost, "/follow",
		map[string]interface{}{"follower_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowThenUnfollowRemovesEdge(t *testing.T) {
	server := newTestServer(t)
	follower := createTestUser(t, server.DB, "amelia", "amelia@example.com")
	followed := createTestUser(t, server.DB, "jonas", "jonas@example.com")

	body := map[string]interface{}{"follower_id": follower.ID, "following_id": followed.ID}
	performRequest(t, server.Router, http.MethodPost, "/follow", body)
	performRequest(t, server.Router, http.MethodDelete, "/follow", body)

	edge := models.Follower{}
	following, err := edge.IsFollowing(server.DB, follower.ID, followed.ID)
	assert.NoError(t, err)
	assert.False(t, following)
}
