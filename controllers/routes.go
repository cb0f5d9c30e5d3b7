package controllers

import (
	"net/http"
	"os"
	"strings"

	"Recipegram/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Session endpoints
	s.Router.POST("/login", s.Login)

	// User endpoints
	s.Router.POST("/user", s.CreateUser)
	s.Router.GET("/user", s.GetUserByEmail)
	s.Router.GET("/users", s.GetUsers)
	s.Router.GET("/userprofile", s.GetUserProfile)

	// Read endpoints
	s.Router.GET("/comments", s.GetComments)
	s.Router.GET("/commentreplies", s.GetCommentReplies)
	s.Router.GET("/followingreels", s.GetFollowingReels)

	// Mutations. When REQUIRE_AUTH is set, the acting identity must come from
	// a verified session token; otherwise payload ids are trusted as-is.
	mutations := s.Router.Group("")
	if strings.EqualFold(os.Getenv("REQUIRE_AUTH"), "true") {
		mutations.Use(middlewares.TokenAuthMiddleware(s.DB))
	}
	mutations.POST("/upload", s.CreatePost)
	mutations.POST("/comments", s.CreateComment)
	mutations.POST("/reellikeunlike", s.LikePost)
	mutations.DELETE("/reellikeunlike", s.UnlikePost)
	mutations.POST("/commentlikeunlike", s.LikeComment)
	mutations.DELETE("/commentlikeunlike", s.UnlikeComment)
	mutations.POST("/follow", s.FollowUser)
	mutations.DELETE("/follow", s.UnfollowUser)
}
