package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Login checks the credentials against active accounts and issues the
// session: a signed token set as an HTTP-only cookie and echoed in the
// body for API clients.
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("username = ? AND is_active = ?", req.Username, true).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.ErrorLogger.Printf("failed to record last login for %s: %v", user.Username, err)
	}

	c.SetCookie(utils.AuthCookieName, token, int(utils.TokenLifetime.Seconds()), "/", "", false, true)

	utils.InfoLogger.Printf("login: %s (role=%s)", user.Username, user.Role)
	utils.RespondJSON(c, http.StatusOK, "Welcome back, "+user.FullName+"!", gin.H{
		"token":     token,
		"user_id":   user.ID,
		"username":  user.Username,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}

// Logout revokes the session token and clears the cookie.
func (uc *UserController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		utils.BlacklistToken(token)
	}
	c.SetCookie(utils.AuthCookieName, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "You have been logged out successfully", nil)
}

// GetProfile returns the session user.
func (uc *UserController) GetProfile(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, sessionUserID(c)).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", user)
}
