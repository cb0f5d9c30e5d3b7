package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"Recipegram/models"

	"github.com/gin-gonic/gin"
)

type commentCreateRequest struct {
	UserID   uint   `json:"user_id"`
	PostID   uint   `json:"post_id"`
	Text     string `json:"text"`
	ParentID *uint  `json:"parent_id"`
}

// CreateComment inserts a comment or, when parent_id is supplied, a reply.
// The full created row comes back with the server-assigned id and timestamp.
// No moderation or length limits are applied server-side.
func (server *Server) CreateComment(c *gin.Context) {
	var req commentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "user_id, post_id, and text are required")
		return
	}

	comment := models.Comment{
		UserID:   req.UserID,
		PostID:   req.PostID,
		Text:     req.Text,
		ParentID: req.ParentID,
	}
	comment.Prepare()
	if errorMessages := comment.Validate(); len(errorMessages) > 0 {
		respondMissingField(c, "user_id, post_id, and text are required")
		return
	}
	if !actingUserAllowed(c, comment.UserID) {
		respondIdentityMismatch(c)
		return
	}

	created, err := comment.SaveComment(server.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetComments lists the top-level comments of a post, oldest first, each
// annotated with author identity, live reply and like counts, and the
// viewer's like flag.
func (server *Server) GetComments(c *gin.Context) {
	postID, err := requiredUintQuery(c, "post_id")
	if err != nil {
		respondMissingField(c, "post_id is required")
		return
	}
	viewerID := optionalViewerID(c, "user_id")

	comment := models.Comment{}
	rows, err := comment.TopLevelForPost(server.DB, postID, viewerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetCommentReplies lists the direct replies of a parent comment, oldest
// first. Only one nesting level is ever traversed.
func (server *Server) GetCommentReplies(c *gin.Context) {
	parentID, err := requiredUintQuery(c, "parent_id")
	if err != nil {
		respondMissingField(c, "parent_id is required")
		return
	}
	viewerID := optionalViewerID(c, "user_id")

	comment := models.Comment{}
	rows, err := comment.RepliesFor(server.DB, parentID, viewerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func requiredUintQuery(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
