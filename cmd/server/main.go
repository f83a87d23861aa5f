package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/simple-twitter/config"
    "github.com/d60-Lab/simple-twitter/internal/api"
    "github.com/d60-Lab/simple-twitter/internal/api/handler"
    "github.com/d60-Lab/simple-twitter/internal/auth"
    "github.com/d60-Lab/simple-twitter/internal/repository"
    "github.com/d60-Lab/simple-twitter/internal/service"
    "github.com/d60-Lab/simple-twitter/pkg/database"
    "github.com/d60-Lab/simple-twitter/pkg/logger"
    "github.com/d60-Lab/simple-twitter/pkg/tracing"
)

// @title Simple Twitter API
// @version 1.0
// @description 社交后端：关注关系、推文互动与观察者视角的聚合读取
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintf(os.Stderr, "load config: %v\n", err)
        os.Exit(1)
    }
    if err := logger.Init(cfg.Log.Level); err != nil {
        fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
        os.Exit(1)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    ctx := context.Background()
    shutdownTracing, err := tracing.Init(ctx, cfg)
    if err != nil {
        logger.Error("tracing init failed", zap.Error(err))
        os.Exit(1)
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Error("database init failed", zap.Error(err))
        os.Exit(1)
    }

    cache := redis.NewClient(&redis.Options{
        Addr:     cfg.Redis.Addr,
        Password: cfg.Redis.Password,
        DB:       cfg.Redis.DB,
    })
    if err := cache.Ping(ctx).Err(); err != nil {
        logger.Warn("redis unreachable, token revocation disabled", zap.Error(err))
        cache = nil
    }

    userRepo := repository.NewUserRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    replyRepo := repository.NewReplyRepository(db)
    likeRepo := repository.NewLikeRepository(db)
    followshipRepo := repository.NewFollowshipRepository(db)

    userSvc := service.NewUserService(userRepo)
    tweetSvc := service.NewTweetService(tweetRepo, replyRepo, likeRepo, userRepo)
    feedSvc := service.NewFeedService(userRepo, tweetRepo, replyRepo, likeRepo, followshipRepo)
    followSvc := service.NewFollowshipService(followshipRepo, userRepo)

    tokenMaker := auth.NewTokenMaker(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour, cache)
    h := handler.New(userSvc, tweetSvc, feedSvc, followSvc, tokenMaker)
    router := api.NewRouter(cfg, h, tokenMaker)

    srv := &http.Server{
        Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
        Handler: router,
    }

    go func() {
        logger.Info("server listening", zap.Int("port", cfg.Server.Port))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("server stopped", zap.Error(err))
            os.Exit(1)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("server shutdown failed", zap.Error(err))
    }
    if err := shutdownTracing(shutdownCtx); err != nil {
        logger.Warn("tracing shutdown failed", zap.Error(err))
    }
}
