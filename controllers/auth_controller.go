package controllers

import (
	"parrilla-backend/configs"
	"parrilla-backend/pkg/resp"
	"parrilla-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Cfg *configs.Config }

func NewAuthController(cfg *configs.Config) *AuthController { return &AuthController{Cfg: cfg} }

type staffLoginReq struct {
	PIN string `json:"pin" binding:"required"`
}

// POST /auth/staff-login
//
// Exchanges the kiosk PIN for a short-lived staff token. The PIN is a
// shared-tablet convenience gate, not a security boundary: there are no
// accounts and nothing behind it that isn't already in the room.
func (ac *AuthController) StaffLogin(c *gin.Context) {
	var req staffLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.PIN != ac.Cfg.StaffPIN {
		resp.Unauthorized(c, "wrong pin")
		return
	}

	token, err := utils.GenerateToken("staff", ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}
