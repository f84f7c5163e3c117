package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"antalyahotel/internal/config"
	"antalyahotel/internal/database"
	"antalyahotel/internal/domain"
	"antalyahotel/internal/middleware"
	"antalyahotel/internal/modules/admin"
	"antalyahotel/internal/modules/booking"
	"antalyahotel/internal/modules/concierge"
	"antalyahotel/internal/modules/content"
	"antalyahotel/internal/modules/rooms"
	jwtsvc "antalyahotel/internal/pkg/jwt"
	"antalyahotel/internal/repository"
	"antalyahotel/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	snapshots := repository.NewSnapshotRepository(db)
	if err := snapshots.Migrate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	st, err := store.New(ctx, snapshots)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	roomsHandler := rooms.NewHandler(rooms.NewService(st))
	bookingHandler := booking.NewHandler(booking.NewService(st))

	adminService, err := admin.NewService(st, j, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	adminHandler := admin.NewHandler(adminService)

	var generator concierge.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := concierge.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		generator = client
	} else {
		log.Println("GEMINI_API_KEY is empty, concierge will serve fallback replies")
	}

	hotel := domain.DefaultHotelInfo()
	conciergeHandler := concierge.NewHandler(concierge.NewService(st, generator, hotel))
	contentHandler := content.NewHandler(hotel)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		protected.Use(middleware.RequireRole("admin"))

		roomsHandler.RegisterRoutes(v1, protected)
		bookingHandler.RegisterRoutes(v1, protected)
		adminHandler.RegisterRoutes(v1, protected)
		conciergeHandler.RegisterRoutes(v1)
		contentHandler.RegisterRoutes(v1)
	}

	log.Println("Listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
