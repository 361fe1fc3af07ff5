package controllers

import (
	"errors"

	"parrilla-backend/pkg/resp"
	"parrilla-backend/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct{ Service *services.SettingsService }

func NewSettingsController(s *services.SettingsService) *SettingsController {
	return &SettingsController{Service: s}
}

// GET /branding
func (sc *SettingsController) Get(c *gin.Context) {
	b, err := sc.Service.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

type setBrandingReq struct {
	Name     string `json:"name" binding:"required"`
	LogoURL  string `json:"logoUrl"`
	LogoData string `json:"logoData"` // base64 upload, persisted under /uploads
}

// PUT /admin/branding
func (sc *SettingsController) Set(c *gin.Context) {
	var req setBrandingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b, err := sc.Service.Set(req.Name, req.LogoURL, req.LogoData)
	switch {
	case errors.Is(err, services.ErrBrandingName):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, b)
	}
}
