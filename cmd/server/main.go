// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/cache"
	"github.com/marketmind/marketmind-backend/internal/config"
	"github.com/marketmind/marketmind-backend/internal/controller"
	"github.com/marketmind/marketmind-backend/internal/db"
	"github.com/marketmind/marketmind-backend/internal/handler"
	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/logger"
	"github.com/marketmind/marketmind-backend/internal/queue"
	"github.com/marketmind/marketmind-backend/internal/repository"
	"github.com/marketmind/marketmind-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	// Completion cache; a dead Redis only disables caching.
	store := cache.New(cfg.Redis)
	defer store.Close()
	if err := store.Ping(context.Background()); err != nil {
		log.Warn("redis unavailable, completion cache disabled", zap.Error(err))
		store = nil
	}

	var groqClient llm.Client = llm.NewGroq(cfg.Groq, log)
	if store != nil {
		groqClient = &cache.CachedClient{
			Inner:  groqClient,
			Store:  store,
			Model:  cfg.Groq.Model,
			Logger: log,
		}
	}

	var events queue.Publisher = queue.NoopPublisher{}
	if cfg.Queue.Enabled {
		pub, err := queue.NewAMQPPublisher(cfg.Queue.URL, cfg.Queue.Name)
		if err != nil {
			log.Warn("rabbitmq unavailable, generation events disabled", zap.Error(err))
		} else {
			events = pub
			defer pub.Close()
		}
	}

	userRepo := &repository.UserRepository{DB: database}
	campaignRepo := &repository.CampaignRepository{DB: database}
	pitchRepo := &repository.PitchRepository{DB: database}
	leadRepo := &repository.LeadRepository{DB: database}
	eventRepo := &repository.EventRepository{DB: database}

	campaignService := &service.CampaignService{Repo: campaignRepo, LLM: groqClient, Events: events, Logger: log}
	pitchService := &service.PitchService{Repo: pitchRepo, LLM: groqClient, Events: events, Logger: log}
	leadService := &service.LeadService{Repo: leadRepo, LLM: groqClient, Events: events, Logger: log}
	chatService := &service.ChatService{LLM: groqClient, Logger: log}
	authService := &service.AuthService{Users: userRepo}
	analyticsService := &service.AnalyticsService{
		Campaigns: campaignRepo,
		Pitches:   pitchRepo,
		Leads:     leadRepo,
		Events:    eventRepo,
	}

	generateController := &controller.GenerateController{
		Campaigns: campaignService,
		Pitches:   pitchService,
		Leads:     leadService,
		Chat:      chatService,
		Logger:    log,
	}
	authController := &controller.AuthController{Auth: authService, Logger: log}
	historyHandler := &handler.HistoryHandler{
		Campaigns: campaignService,
		Pitches:   pitchService,
		Leads:     leadService,
		Analytics: analyticsService,
		Logger:    log,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(controller.RequestLogger(log))
	r.Use(controller.Metrics)

	// Generation routes
	r.Post("/generate_campaign", generateController.GenerateCampaign)
	r.Post("/generate_pitch", generateController.GeneratePitch)
	r.Post("/lead_score", generateController.ScoreLead)
	r.Post("/chatbot", generateController.Chatbot)

	// Auth routes
	r.Post("/register", authController.Register)
	r.Post("/login", authController.Login)

	// History & analytics
	r.Get("/campaigns", historyHandler.ListCampaigns)
	r.Get("/pitches", historyHandler.ListPitches)
	r.Get("/leads", historyHandler.ListLeads)
	r.Get("/analytics/summary", historyHandler.Summary)

	r.Get("/healthz", historyHandler.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info("server running", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
