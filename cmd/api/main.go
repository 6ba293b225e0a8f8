package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/innkeep/innkeep-api/internal/config"
	"github.com/innkeep/innkeep-api/internal/domain/auth"
	"github.com/innkeep/innkeep-api/internal/domain/booking"
	"github.com/innkeep/innkeep-api/internal/domain/payment"
	"github.com/innkeep/innkeep-api/internal/domain/room"
	"github.com/innkeep/innkeep-api/internal/domain/user"
	"github.com/innkeep/innkeep-api/internal/metrics"
	"github.com/innkeep/innkeep-api/internal/middleware"
	"github.com/innkeep/innkeep-api/internal/pkg/database"
	"github.com/innkeep/innkeep-api/internal/pkg/jwt"
	"github.com/innkeep/innkeep-api/internal/pkg/response"
	"github.com/innkeep/innkeep-api/internal/pkg/stripegw"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Innkeep API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	var gateway payment.IntentCreator
	if cfg.StripeSecretKey != "" {
		stripeClient, err := stripegw.New(cfg.StripeSecretKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to init Stripe client")
		}
		gateway = stripeClient
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	metrics.Register()

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	roomRepo := room.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	userService := user.NewService(userRepo)
	roomService := room.NewService(roomRepo, bookingRepo)
	bookingService := booking.NewService(bookingRepo)
	paymentService := payment.NewService(paymentRepo, gateway)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	roomHandler := room.NewHandler(roomService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, response.M{
			"status":  "ok",
			"version": "1.0.0",
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		authHandler.Register(r, authMiddleware)

		r.Mount("/user", userHandler.Routes(authMiddleware))
		r.Mount("/room", roomHandler.Routes(authMiddleware))
		r.Mount("/booking", bookingHandler.Routes(authMiddleware))
		r.Mount("/payment", paymentHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
