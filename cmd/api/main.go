package main

import (
	"context"
	"log"

	"talentbook/internal/config"
	"talentbook/internal/database"
	"talentbook/internal/middleware"
	"talentbook/internal/modules/auth"
	"talentbook/internal/modules/booking"
	"talentbook/internal/modules/catalog"
	jwtsvc "talentbook/internal/pkg/jwt"
	"talentbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	tokenRepo := repository.NewAuthTokenRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, tokenRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, userRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, userRepo, serviceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	// Expired and revoked session tokens pile up; sweep them on a schedule.
	sched := cron.New()
	if _, err := sched.AddFunc(cfg.TokenPurgeSpec, func() {
		if err := tokenRepo.DeleteExpired(context.Background()); err != nil {
			log.Printf("token purge failed: %v", err)
		}
	}); err != nil {
		log.Fatal(err)
	}
	sched.Start()
	defer sched.Stop()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	public := r.Group("/")
	authHandler.RegisterPublicRoutes(public)

	authenticated := r.Group("/")
	authenticated.Use(middleware.Authenticate(j, tokenRepo))
	authHandler.RegisterProtectedRoutes(authenticated)

	talent := r.Group("/talent")
	talent.Use(middleware.Authenticate(j, tokenRepo))
	talent.Use(middleware.RequireRole("talent"))
	catalogHandler.RegisterTalentRoutes(talent)
	bookingHandler.RegisterTalentRoutes(talent)

	client := r.Group("/client")
	client.Use(middleware.Authenticate(j, tokenRepo))
	client.Use(middleware.RequireRole("client"))
	catalogHandler.RegisterClientRoutes(client)
	bookingHandler.RegisterClientRoutes(client)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
