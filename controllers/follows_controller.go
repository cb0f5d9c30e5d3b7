package controllers

import (
	"log"
	"net/http"

	"Recipegram/cache"
	"Recipegram/models"

	"github.com/gin-gonic/gin"
)

type followRequest struct {
	FollowerID  uint `json:"follower_id"`
	FollowingID uint `json:"following_id"`
}

// FollowUser inserts a follow edge with conflict suppression, so following an
// already-followed account succeeds without creating a second edge.
func (server *Server) FollowUser(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowerID == 0 || req.FollowingID == 0 {
		respondMissingField(c, "Both follower_id and following_id are required")
		return
	}
	if req.FollowerID == req.FollowingID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}
	if !actingUserAllowed(c, req.FollowerID) {
		respondIdentityMismatch(c)
		return
	}

	follow := models.Follower{FollowerID: req.FollowerID, FollowingID: req.FollowingID}
	if err := follow.SaveFollower(server.DB); err != nil {
		respondStoreError(c, err)
		return
	}
	server.invalidateProfileCache(c, req.FollowerID, req.FollowingID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User followed successfully"})
}

// UnfollowUser deletes the edge; a missing edge is a silent success.
func (server *Server) UnfollowUser(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowerID == 0 || req.FollowingID == 0 {
		respondMissingField(c, "Both follower_id and following_id are required")
		return
	}
	if !actingUserAllowed(c, req.FollowerID) {
		respondIdentityMismatch(c)
		return
	}

	follow := models.Follower{FollowerID: req.FollowerID, FollowingID: req.FollowingID}
	if err := follow.DeleteFollower(server.DB); err != nil {
		respondStoreError(c, err)
		return
	}
	server.invalidateProfileCache(c, req.FollowerID, req.FollowingID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User unfollowed successfully"})
}

// invalidateProfileCache drops the cached profile aggregates of the users
// whose counts just changed. A failure only delays freshness until the TTL.
func (server *Server) invalidateProfileCache(c *gin.Context, userIDs ...uint) {
	for _, id := range userIDs {
		var user models.User
		if err := server.DB.Select("name").First(&user, id).Error; err != nil {
			continue
		}
		if err := cache.DeleteByPrefix(c.Request.Context(), profileCacheKey(user.Name)); err != nil {
			log.Printf("profile cache invalidation failed: %v", err)
		}
	}
}
