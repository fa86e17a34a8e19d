package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"

	"healthcare/internal/api"
	"healthcare/internal/availability"
	"healthcare/internal/config"
	"healthcare/internal/logger"
	"healthcare/internal/repository"
	"healthcare/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init("healthcare-api", cfg.Env)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open DB")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}

	hospitals := repository.NewHospitalRepository(db)
	doctors := repository.NewDoctorRepository(db)
	users := repository.NewUserRepository(db)
	planner := availability.NewPlanner(cfg.Search.Availability)

	sender := service.NewSenderService(service.NewTwilioSMS(cfg.Twilio), service.NewSendGridEmail(cfg.SendGrid))
	sender.EmergencyLine = cfg.Emergency.AlertNumber

	var gateway service.PaymentGateway
	if cfg.Stripe.SecretKey != "" {
		stripe.Key = cfg.Stripe.SecretKey
		gateway = service.NewStripeService(cfg.Stripe)
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, card checkout disabled")
	}
	payments := service.NewPaymentService(repository.NewPaymentRepository(db), gateway)

	hospitalSvc := service.NewHospitalService(hospitals, doctors, cfg.Search.Geo)
	doctorSvc := service.NewDoctorService(doctors, planner)
	appointmentSvc := service.NewAppointmentService(
		repository.NewAppointmentRepository(db), hospitals, doctors, users,
		payments, sender, planner, cfg.Booking,
	)
	homeVisitSvc := service.NewHomeVisitService(repository.NewHomeVisitRepository(db), planner, cfg.Search.Geo)
	emergencySvc := service.NewEmergencyService(repository.NewEmergencyRepository(db), hospitals, sender, cfg.Search.Geo, cfg.Emergency)
	authSvc := service.NewAuthService(users, doctors, hospitals, cfg.JWT)

	handlers := api.Handlers{
		Auth:        api.NewAuthHandler(authSvc),
		Hospitals:   api.NewHospitalHandler(hospitalSvc, doctorSvc),
		Appointment: api.NewAppointmentHandler(appointmentSvc),
		HomeVisits:  api.NewHomeVisitHandler(homeVisitSvc),
		Emergency:   api.NewEmergencyHandler(emergencySvc),
	}
	if cfg.Stripe.WebhookSecret != "" {
		handlers.Stripe = api.NewStripeWebhookHandler(cfg.Stripe.WebhookSecret, payments)
	}

	limiter, err := api.NewRateLimiter(api.RateLimiterConfig{
		PerMinute:      cfg.RateLimit.PerMinute,
		Burst:          cfg.RateLimit.Burst,
		IdleTTL:        cfg.RateLimit.IdleTTL,
		TrustedProxies: cfg.RateLimit.TrustedProxies,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid rate limit config")
	}

	router := api.NewRouter(handlers, api.RouterConfig{
		JWTSecret:      []byte(cfg.JWT.Secret),
		AllowedOrigins: cfg.AllowedOrigins,
		Limiter:        limiter,
	})

	var scheduler *cron.Cron
	if cfg.CronEnabled {
		scheduler = cron.New()
		if err := service.NewJobService(repository.NewJobRepository(db)).Schedule(scheduler); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule jobs")
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}
