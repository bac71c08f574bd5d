package main

import (
	"context"
	"time"

	"campaid-backend/config"
	"campaid-backend/database"
	"campaid-backend/handlers"
	"campaid-backend/payment"
	"campaid-backend/router"
	"campaid-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	logrus.Info("connected to MongoDB")

	h := handlers.New(
		db,
		token.NewService(cfg.TokenSecret, token.DefaultTTL),
		payment.NewClient(cfg.StripeSecretKey),
	)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	router.SetupRoutes(app, h, cfg.TokenSecret, db)

	logrus.Infof("CampAid is on port: %v", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
