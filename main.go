package main

import (
	"fmt"
	"log"

	"parrilla-backend/configs"
	"parrilla-backend/middlewares"
	"parrilla-backend/routes"
	"parrilla-backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedBranding(db); err != nil {
		log.Fatalf("seed branding failed: %v", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// change-notification hub
	hub := ws.NewEventHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded logos
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
