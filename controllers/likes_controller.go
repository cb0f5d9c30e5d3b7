package controllers

import (
	"net/http"

	"Recipegram/models"

	"github.com/gin-gonic/gin"
)

type postLikeRequest struct {
	UserID uint `json:"user_id"`
	PostID uint `json:"post_id"`
}

type commentLikeRequest struct {
	UserID    uint `json:"user_id"`
	CommentID uint `json:"comment_id"`
}

// LikePost records a like for a post. The insert is conflict-suppressed, so
// repeating the call leaves exactly one row and still reports success. The
// caller adjusts its local count optimistically; no count is returned.
func (server *Server) LikePost(c *gin.Context) {
	var req postLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.PostID == 0 {
		respondMissingField(c, "User ID and Post ID are required")
		return
	}
	if !actingUserAllowed(c, req.UserID) {
		respondIdentityMismatch(c)
		return
	}

	like := models.Like{UserID: req.UserID, PostID: req.PostID}
	if err := like.SaveLike(server.DB); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post liked"})
}

// UnlikePost deletes the pair. Deleting a like that does not exist is a
// silent success, not an error.
func (server *Server) UnlikePost(c *gin.Context) {
	var req postLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.PostID == 0 {
		respondMissingField(c, "User ID and Post ID are required")
		return
	}
	if !actingUserAllowed(c, req.UserID) {
		respondIdentityMismatch(c)
		return
	}

	like := models.Like{UserID: req.UserID, PostID: req.PostID}
	if err := like.DeleteLike(server.DB); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post unliked"})
}

func (server *Server) LikeComment(c *gin.Context) {
	var req commentLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.CommentID == 0 {
		respondMissingField(c, "User ID and Comment ID are required")
		return
	}
	if !actingUserAllowed(c, req.UserID) {
		respondIdentityMismatch(c)
		return
	}

	like := models.CommentLike{UserID: req.UserID, CommentID: req.CommentID}
	if err := like.SaveCommentLike(server.DB); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment liked"})
}

func (server *Server) UnlikeComment(c *gin.Context) {
	var req commentLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.CommentID == 0 {
		respondMissingField(c, "User ID and Comment ID are required")
		return
	}
	if !actingUserAllowed(c, req.UserID) {
		respondIdentityMismatch(c)
		return
	}

	like := models.CommentLike{UserID: req.UserID, CommentID: req.CommentID}
	if err := like.DeleteCommentLike(server.DB); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment unliked"})
}
