package controllers

import (
	"net/http"

	"Recipegram/models"

	"github.com/gin-gonic/gin"
)

type postCreateRequest struct {
	UserID  uint   `json:"userID"`
	Video   string `json:"video"`
	Caption string `json:"caption"`
	Recipe  string `json:"recipe"`
}

// CreatePost records an uploaded reel. The video URL must already point at
// durably stored content; uploading the bytes to the CDN happened before this
// call.
func (server *Server) CreatePost(c *gin.Context) {
	var req postCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "userID and video URL are required")
		return
	}

	post := models.Post{
		UserID:   req.UserID,
		MediaURL: req.Video,
		Caption:  req.Caption,
		Recipe:   req.Recipe,
	}
	post.Prepare()
	if errorMessages := post.Validate(); len(errorMessages) > 0 {
		respondMissingField(c, "userID and video URL are required")
		return
	}
	if !actingUserAllowed(c, post.UserID) {
		respondIdentityMismatch(c)
		return
	}

	created, err := post.SavePost(server.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	server.invalidateProfileCache(c, created.UserID)

	c.JSON(http.StatusOK, created)
}

// GetFollowingReels returns the personalized feed: posts authored by the
// accounts the viewer follows, newest first, with live engagement counts.
func (server *Server) GetFollowingReels(c *gin.Context) {
	viewerID := optionalViewerID(c, "user_id")
	if viewerID == nil {
		respondMissingField(c, "User ID is required")
		return
	}

	post := models.Post{}
	rows, err := post.FollowingFeed(server.DB, *viewerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
