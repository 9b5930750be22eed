package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/docs" // swagger docs
	"hawkerhero/internal/cache"
	"hawkerhero/internal/config"
	"hawkerhero/internal/db"
	"hawkerhero/internal/handler"
	"hawkerhero/internal/logger"
	"hawkerhero/internal/metrics"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/router"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
	"hawkerhero/internal/upload"
	"hawkerhero/internal/view"
)

const (
	readHeaderTimeout = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// @title Hawker Hero
// @version 1.0
// @description Server-rendered guide to hawker centers, stalls, food items, reviews, favorites and recommendations.
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.Must(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		// sessions need redis; the stall cache degrades on its own
		log.Warn("redis unreachable, logins will fail until it is back", zap.Error(err))
	}
	cancelPing()

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}
	renderer, err := view.New()
	if err != nil {
		log.Fatal("templates", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	centerRepo := repository.NewHawkerCenterRepository(gormDB)
	stallRepo := repository.NewStallRepository(gormDB)
	foodRepo := repository.NewFoodItemRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	recRepo := repository.NewRecommendationRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	stallService := service.NewStallService(stallRepo, centerRepo, foodRepo, cacheClient)
	centerService := service.NewHawkerCenterService(centerRepo, stallRepo, stallService)
	foodService := service.NewFoodItemService(foodRepo, stallRepo, stallService)
	reviewService := service.NewReviewService(reviewRepo, commentRepo, stallRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, stallRepo, foodRepo, userRepo)
	recService := service.NewRecommendationService(recRepo, stallRepo, foodRepo, userRepo)
	dashboardService := service.NewDashboardService(statsRepo, reviewRepo, favoriteRepo, recRepo)

	// Sessions and metrics
	sessions := session.NewManager(
		session.NewStore(cacheClient.Strict(), cfg.SessionTTL),
		session.NewSigner(cfg.SessionSecret, cfg.SessionTTL),
		cfg.CookieSecure,
		log,
	)
	m := metrics.New()

	// Initialize handlers
	handlers := router.Handlers{
		Auth:            handler.NewAuthHandler(authService, m, log),
		Dashboard:       handler.NewDashboardHandler(dashboardService, stallService, log),
		Stalls:          handler.NewStallHandler(stallService, centerService, reviewService, uploads, cfg.PageSize, log),
		Centers:         handler.NewHawkerCenterHandler(centerService, uploads, cfg.PageSize, log),
		Foods:           handler.NewFoodItemHandler(foodService, stallService, uploads, cfg.PageSize, log),
		Reviews:         handler.NewReviewHandler(reviewService, stallService, cfg.PageSize, log),
		Favorites:       handler.NewFavoriteHandler(favoriteService, log),
		Recommendations: handler.NewRecommendationHandler(recService, stallService, foodService, cfg.PageSize, log),
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Server.ReadHeaderTimeout = readHeaderTimeout
	router.Register(e, cfg, log, sessions, m, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr), zap.String("swagger", "/swagger/index.html"))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}
