package controllers

import (
	"errors"

	"parrilla-backend/pkg/resp"
	"parrilla-backend/services"

	"github.com/gin-gonic/gin"
)

type KitchenController struct{ Orders *services.OrderService }

func NewKitchenController(orders *services.OrderService) *KitchenController {
	return &KitchenController{Orders: orders}
}

// GET /kitchen/orders
func (kc *KitchenController) Board(c *gin.Context) {
	tickets, err := kc.Orders.Board()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"tickets": tickets, "count": len(tickets)})
}

// POST /kitchen/orders/:id/advance
//
// Moves a ticket one step forward. Advancing a delivered order answers
// with its unchanged state; a failed write is surfaced so staff can see
// the update did not take effect.
func (kc *KitchenController) Advance(c *gin.Context) {
	status, err := kc.Orders.Advance(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"status": status, "action": services.ActionLabel(status)})
	}
}
