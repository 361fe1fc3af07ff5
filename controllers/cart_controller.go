package controllers

import (
	"parrilla-backend/pkg/resp"
	"parrilla-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookie = "cart_session"

// cartSessionID reads the session cookie, minting one for first-time
// visitors. The cart itself lives server-side keyed by this id.
func cartSessionID(c *gin.Context) string {
	if sid, err := c.Cookie(cartCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(cartCookie, sid, 60*60*24*30, "/", "", false, true)
	return sid
}

type CartController struct {
	Carts *services.SessionCarts
	Menu  *services.MenuService
}

func NewCartController(carts *services.SessionCarts, menu *services.MenuService) *CartController {
	return &CartController{Carts: carts, Menu: menu}
}

func cartView(cart services.Cart) gin.H {
	return gin.H{"items": cart, "total": services.CartTotal(cart)}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	resp.OK(c, cartView(cc.Carts.Get(cartSessionID(c))))
}

type addCartReq struct {
	ItemID string `json:"itemId" binding:"required"`
}

// POST /cart/items
func (cc *CartController) Add(c *gin.Context) {
	var req addCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := cc.Menu.Get(req.ItemID)
	if err != nil {
		resp.BadRequest(c, "menu item not found")
		return
	}
	cart := cc.Carts.Add(cartSessionID(c), *item)
	resp.OK(c, cartView(cart))
}

type changeQtyReq struct {
	Delta int `json:"delta" binding:"required"`
}

// PATCH /cart/items/:id
func (cc *CartController) ChangeQuantity(c *gin.Context) {
	var req changeQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart := cc.Carts.ChangeQuantity(cartSessionID(c), c.Param("id"), req.Delta)
	resp.OK(c, cartView(cart))
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	cc.Carts.Clear(cartSessionID(c))
	resp.OK(c, cartView(nil))
}
