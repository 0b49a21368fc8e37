package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/docflow-app/docflow/handlers"
	"github.com/docflow-app/docflow/internal/autodoc"
	"github.com/docflow-app/docflow/internal/config"
	"github.com/docflow-app/docflow/internal/database"
	"github.com/docflow-app/docflow/internal/documents"
	"github.com/docflow-app/docflow/internal/sessions"
	"github.com/docflow-app/docflow/internal/users"
	"github.com/docflow-app/docflow/pkg/logger"
	"github.com/docflow-app/docflow/pkg/metrics"
	"github.com/docflow-app/docflow/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level comes from LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: db=%s redis=%v", cfg.Database.Driver, cfg.Redis.Host != "")

	// Connect to Redis early so both the rate limiter and the session store
	// can use it when configured. The app degrades to in-memory sessions
	// when Redis is absent, which is fine for a single instance.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}

	usersSvc := users.NewService(users.NewGormRepository(db))
	docsSvc := documents.NewService(
		documents.NewGormRepository(db),
		usersSvc,
		autodoc.NewWriter(db, nil),
	)

	var sessionsSvc *sessions.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("using Redis for session storage")
	} else {
		sessionsSvc = sessions.NewService(sessions.NewMemoryRepository())
		logger.Warnf("using in-memory session storage; sessions will not survive restarts")
	}

	// Optional global rate limiter, per-user when authenticated, per-IP
	// otherwise.
	global := []gin.HandlerFunc{gin.Logger()}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			global = append(global, middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			global = append(global, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r := handlers.NewRouter(cfg, usersSvc, docsSvc, sessionsSvc, global...)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["database"] = database.Ping(db) == nil
		if !deps["database"] {
			ready = false
		}

		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil && redisClient.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting docflow on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
