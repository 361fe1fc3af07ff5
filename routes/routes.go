package routes

import (
	"parrilla-backend/configs"
	"parrilla-backend/controllers"
	"parrilla-backend/middlewares"
	"parrilla-backend/repository"
	"parrilla-backend/services"
	"parrilla-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.EventHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	carts := services.NewSessionCarts()
	menuSvc := services.NewMenuService(menuRepo, hub)
	orderSvc := services.NewOrderService(orderRepo, hub, cfg.UrgencyAfter)
	settingsSvc := services.NewSettingsService(settingsRepo, hub, "uploads")

	// Controllers
	authCtrl := controllers.NewAuthController(cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(carts, menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, carts)
	kitchenCtrl := controllers.NewKitchenController(orderSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)

	// Public (customer kiosk)
	r.POST("/auth/staff-login", authCtrl.StaffLogin)
	r.GET("/menu", menuCtrl.List)
	r.GET("/branding", settingsCtrl.Get)
	r.GET("/cart", cartCtrl.Get)
	r.POST("/cart/items", cartCtrl.Add)
	r.PATCH("/cart/items/:id", cartCtrl.ChangeQuantity)
	r.DELETE("/cart", cartCtrl.Clear)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/mine", orderCtrl.Mine)

	// Live change notifications (refetch-everything hints)
	r.GET("/ws/events", hub.HandleWebSocket)

	// Staff (kitchen board)
	kitchen := r.Group("/kitchen", middlewares.StaffOnly(cfg.JWTSecret))
	{
		kitchen.GET("/orders", kitchenCtrl.Board)
		kitchen.POST("/orders/:id/advance", kitchenCtrl.Advance)
	}

	// Staff (admin panel)
	admin := r.Group("/admin", middlewares.StaffOnly(cfg.JWTSecret))
	{
		admin.POST("/menu", menuCtrl.Upsert)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
		admin.PUT("/branding", settingsCtrl.Set)
	}
}
