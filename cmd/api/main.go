package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/auth"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	"github.com/BruksfildServices01/marqueai/internal/config"
	dbpkg "github.com/BruksfildServices01/marqueai/internal/db"
	"github.com/BruksfildServices01/marqueai/internal/jobs"
	"github.com/BruksfildServices01/marqueai/internal/logger"
	"github.com/BruksfildServices01/marqueai/internal/notify"
	"github.com/BruksfildServices01/marqueai/internal/payment"
	"github.com/BruksfildServices01/marqueai/internal/routes"
	"github.com/BruksfildServices01/marqueai/internal/storage"
	ucSubscription "github.com/BruksfildServices01/marqueai/internal/usecase/subscription"
	"github.com/BruksfildServices01/marqueai/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validators.Register(); err != nil {
		log.Fatal("register validators", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var store cache.Store = cache.Nop{}
	if cfg.RedisAddr != "" {
		redisStore := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		defer redisStore.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			log.Warn("redis unreachable, booking page cache will miss", zap.Error(err))
		}
		cancel()
		store = redisStore
	}

	uploader, err := storage.New(cfg)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}

	gateway, err := payment.New(cfg.MercadoPagoAccessToken, cfg.MercadoPagoNotificationURL)
	if err != nil {
		log.Fatal("payment gateway", zap.Error(err))
	}

	repos := routes.NewRepositories(db)

	auditDispatcher := audit.NewDispatcher(audit.New(repos.Audit), log)
	notifyDispatcher := notify.NewDispatcher(repos.Notifications, log)

	// ======================================================
	// ⏰ JOBS
	// ======================================================
	scheduler := jobs.NewScheduler(log)
	if err := scheduler.RegisterTrialExpiration(ucSubscription.NewExpireTrials(repos.Tenants)); err != nil {
		log.Fatal("schedule trial expiration", zap.Error(err))
	}
	scheduler.Start()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		log.Fatal("trusted proxies", zap.Error(err))
	}

	routes.RegisterRoutes(r, repos, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Cache:    store,
		Uploader: uploader,
		Gateway:  gateway,
		Audit:    auditDispatcher,
		Notify:   notifyDispatcher,
		Tokens:   auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL()),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	scheduler.Stop(ctx)
	auditDispatcher.Close()
	notifyDispatcher.Close()

	log.Info("server stopped")
}
