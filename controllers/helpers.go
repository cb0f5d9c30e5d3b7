package controllers

import (
	"net/http"
	"strconv"
	"strings"

	httpctx "Recipegram/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// respondStoreError surfaces a store-level failure as a 500 carrying the
// underlying message for diagnostics. Nothing is retried; the request is over.
func respondStoreError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"details": err.Error(),
	})
}

func respondMissingField(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// optionalViewerID reads the viewer id from the first non-empty query
// parameter of the given names. An absent or malformed value means "no
// viewer": flags evaluate false instead of erroring.
func optionalViewerID(c *gin.Context, names ...string) *uint {
	for _, name := range names {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil
		}
		uid := uint(id)
		return &uid
	}
	return nil
}

// actingUserAllowed enforces the session identity when token auth is enabled:
// the payload's acting user id must be the token's subject. Without a session
// on the context the payload id is trusted as-is.
func actingUserAllowed(c *gin.Context, uid uint) bool {
	sessionID, ok := httpctx.CurrentUserID(c)
	if !ok {
		return true
	}
	return sessionID == uid
}

func respondIdentityMismatch(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}
