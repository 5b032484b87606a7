package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/internal/config"
	"github.com/Guyuepp/forum-api/internal/repository"
	mysqlRepo "github.com/Guyuepp/forum-api/internal/repository/mysql"
	myRedis "github.com/Guyuepp/forum-api/internal/repository/redis"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/usecase/comment"
	"github.com/Guyuepp/forum-api/internal/usecase/like"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
	"github.com/Guyuepp/forum-api/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	bloomSeedBatch     = 1000
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.Log.Setup()

	// prepare database
	db, err := openDatabase(cfg.Database.DSN())
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.Database.Migrate {
		if err := mysqlRepo.Migrate(cfg.Database.MigrateDSN()); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.CacheAddr(),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// Prepare Repository
	threadDBRepo := mysqlRepo.NewThreadDBRepository(db)
	bloomRepo := myRedis.NewThreadBloom(client, cfg.Cache.BloomBitSize)
	threadRepo := repository.NewThreadRepository(threadDBRepo, bloomRepo)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	replyRepo := mysqlRepo.NewReplyRepository(db)
	likeRepo := mysqlRepo.NewCommentLikeRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare bloom filter, lookups fall through to the database until it is seeded
	if err := threadRepo.InitBloomFilter(ctx, bloomSeedBatch); err != nil {
		logrus.Warnf("failed to init bloom filter, continuing without it: %v", err)
	}

	// Start worker
	reseeder := workers.NewBloomReseedWorker(threadRepo, workers.DefaultReseedInterval, bloomSeedBatch)
	go reseeder.Start(ctx)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo,
		thread.WithDeletedMarkers(cfg.Thread.CommentDeletedMarker, cfg.Thread.ReplyDeletedMarker))
	commentSvc := comment.NewService(threadRepo, commentRepo)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo)
	likeSvc := like.NewService(threadRepo, commentRepo, likeRepo)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery(), gin.Logger())
	route.Use(middleware.Metrics())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout))

	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rest.RegisterRoutes(route, rest.Handlers{
		Thread:  rest.NewThreadHandler(threadSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Reply:   rest.NewReplyHandler(replySvc),
		Like:    rest.NewLikeHandler(likeSvc),
	}, middleware.AuthMiddleware(cfg.Auth.JWTSecret))

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}

func openDatabase(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	return nil, err
}
