package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"Recipegram/cache"
	"Recipegram/models"

	"github.com/gin-gonic/gin"
)

type userCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Password string `json:"password"`
}

// CreateUser registers a user, typically on first sign-in through the
// external identity provider. Registration is idempotent per email: a
// conflicting insert returns the pre-existing row instead of an error.
// Password is optional; identity-provider accounts have none.
func (server *Server) CreateUser(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMissingField(c, "Name and email are required")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Image:    req.Image,
		Password: req.Password,
	}
	user.Prepare()
	if errorMessages := user.Validate(""); len(errorMessages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required", "messages": errorMessages})
		return
	}

	saved, err := user.SaveUser(server.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetUserByEmail looks a user up by their exact email key.
func (server *Server) GetUserByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		respondMissingField(c, "Email query parameter is required")
		return
	}

	user := models.User{}
	found, err := user.FindUserByEmail(server.DB, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (server *Server) GetUsers(c *gin.Context) {
	user := models.User{}
	users, err := user.FindAllUsers(server.DB)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserProfile returns the profile aggregate for a display name: identity
// fields, live follower/following/post counts, the user's posts, and the
// viewer's is_following flag. The aggregate is fronted by a short-TTL cache
// keyed by name and viewer; any cache trouble falls through to the store.
func (server *Server) GetUserProfile(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		respondMissingField(c, "Name is required")
		return
	}
	viewerID := optionalViewerID(c, "loggedInUserId")

	cacheKey := profileCacheKey(name) + ":anon"
	if viewerID != nil {
		cacheKey = fmt.Sprintf("%s:%d", profileCacheKey(name), *viewerID)
	}
	if cached, err := cache.Get(c.Request.Context(), cacheKey); err == nil && cached != "" {
		var profile models.Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			c.JSON(http.StatusOK, profile)
			return
		}
	}

	user := models.User{}
	profile, err := user.GetProfile(server.DB, name, viewerID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondStoreError(c, err)
		return
	}

	if payload, err := json.Marshal(profile); err == nil {
		if err := cache.Set(c.Request.Context(), cacheKey, payload, 30*time.Second); err != nil {
			log.Printf("profile cache store failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, profile)
}

func profileCacheKey(name string) string {
	return "profile:" + name
}
