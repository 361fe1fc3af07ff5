package controllers

import (
	"errors"

	"parrilla-backend/pkg/resp"
	"parrilla-backend/services"

	"github.com/gin-gonic/gin"
)

const lastOrderCookie = "last_order_id"

type OrderController struct {
	Orders *services.OrderService
	Carts  *services.SessionCarts
}

func NewOrderController(orders *services.OrderService, carts *services.SessionCarts) *OrderController {
	return &OrderController{Orders: orders, Carts: carts}
}

type createOrderReq struct {
	CustomerName string `json:"customerName"`
	TableNumber  string `json:"tableNumber"`
}

// POST /orders
//
// Freezes the session cart into an order. On success the cart is
// cleared and the new id is written to the tracking cookie,
// unconditionally replacing any prior value.
func (oc *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sid := cartSessionID(c)
	order, err := oc.Orders.Submit(req.CustomerName, req.TableNumber, oc.Carts.Get(sid))
	switch {
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrNameRequired):
		resp.BadRequest(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}

	oc.Carts.Clear(sid)
	c.SetCookie(lastOrderCookie, order.ID, 60*60*24, "/", "", false, true)
	resp.Created(c, gin.H{
		"order":  order,
		"banner": services.BannerLabel(order.Status),
		"local":  order.Local(),
	})
}

// GET /orders/mine
//
// Re-resolves the tracked order id against the live active list. Once
// the order is delivered (gone from the list) the cookie is dropped and
// the customer stops seeing a banner.
func (oc *OrderController) Mine(c *gin.Context) {
	lastID, _ := c.Cookie(lastOrderCookie)

	order, keep, err := oc.Orders.ResolveMine(lastID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !keep {
		if lastID != "" {
			c.SetCookie(lastOrderCookie, "", -1, "/", "", false, true)
		}
		resp.OK(c, nil)
		return
	}
	resp.OK(c, gin.H{
		"order":  order,
		"banner": services.BannerLabel(order.Status),
		"local":  order.Local(),
	})
}
