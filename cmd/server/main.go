package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/booking"
	"github.com/sajidhasan/resort-booking/internal/config"
	"github.com/sajidhasan/resort-booking/internal/database"
	"github.com/sajidhasan/resort-booking/internal/handler"
	"github.com/sajidhasan/resort-booking/internal/imagestore"
	"github.com/sajidhasan/resort-booking/internal/middleware"
	"github.com/sajidhasan/resort-booking/internal/queue"
	"github.com/sajidhasan/resort-booking/internal/repository"
	"github.com/sajidhasan/resort-booking/internal/router"
	queue_publisher "github.com/sajidhasan/resort-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter. Both fail
	// open when it is absent.
	rdb := config.NewRedisClient()

	serviceRepo := repository.NewServiceRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	submitter := booking.NewSubmitter(serviceRepo, reservationRepo, paymentRepo,
		queue_publisher.PublishBookingCreated)

	var imgStore *imagestore.Client
	if cfg.Image.Enabled {
		imgStore = imagestore.New(cfg.Image.CloudName, cfg.Image.APIKey, cfg.Image.APISecret, cfg.Image.Folder)
	}

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo, adminRepo)
	publicHandler := &handler.PublicHandler{ServiceRepo: serviceRepo}
	bookingHandler := handler.NewBookingHandler(submitter)
	customerHandler := handler.NewCustomerHandler(userRepo, reservationRepo)
	adminHandler := handler.NewAdminHandler(serviceRepo, customerRepo, reservationRepo, paymentRepo, adminRepo, statsRepo)
	imageHandler := handler.NewImageHandler(imgStore)

	go func() {
		if err := queue.StartBookingConsumer(cfg.SMTP); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, bookingHandler, config.LoadCacheConfig(), rdb)
	router.RegisterCustomer(e, customerHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, imageHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
