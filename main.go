package main

import (
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedRoles(); err != nil {
		log.Fatalf("seed roles: %v", err)
	}
	if err := configs.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, configs.DB(), cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
