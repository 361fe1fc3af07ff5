package controllers

import (
	"errors"

	"parrilla-backend/entity"
	"parrilla-backend/pkg/resp"
	"parrilla-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Service *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Service: s} }

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type upsertMenuReq struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// POST /admin/menu
func (mc *MenuController) Upsert(c *gin.Context) {
	var req upsertMenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Upsert(&entity.MenuItem{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	switch {
	case errors.Is(err, services.ErrItemNameRequired),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrUnknownCategory):
		resp.BadRequest(c, err.Error())
	case err != nil:
		// Staff must see that the edit did not take effect.
		resp.ServerError(c, err)
	default:
		resp.OK(c, item)
	}
}

// DELETE /admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.Service.Delete(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}
