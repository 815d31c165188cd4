package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yanails-backend/utils"
)

type LoginInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login records the profile and hands out a session token. The password
// is only required to be present; there is no account to check it against.
func (ctl *Controller) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	profile := ctl.store.Login(strings.TrimSpace(input.Name), strings.TrimSpace(input.Email))

	token, err := utils.GenerateToken(profile.Name, profile.Email, ctl.jwtSecret, ctl.tokenTTL)
	if err != nil {
		ctl.log.Error().Err(err).Msg("failed to generate token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  profile,
	})
}

func (ctl *Controller) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": ctl.store.Profile()})
}
