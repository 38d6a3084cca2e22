package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/oddsmith/punt/app"
	"github.com/oddsmith/punt/app/api"
	"github.com/oddsmith/punt/app/betting"
	"github.com/oddsmith/punt/app/database"
	apiDoc "github.com/oddsmith/punt/app/doc"
	"github.com/oddsmith/punt/app/probability"
	_ "github.com/oddsmith/punt/docs"
	"github.com/oddsmith/punt/internal/cache"
	"github.com/oddsmith/punt/internal/deps"
	"github.com/oddsmith/punt/internal/logger"
	"github.com/oddsmith/punt/internal/router"
	"github.com/oddsmith/punt/internal/sanitizer"
	"github.com/oddsmith/punt/internal/security"
	"github.com/oddsmith/punt/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @title Punt API
// @version 1.0
// @description Paper-trading engine for sports-betting opportunities: odds normalization, expected value, fractional-Kelly staking, and a bankroll-consistent bet ledger.
// @x-logo {"url": "https://go.dev/images/go-logo-white.svg", "altText": "Go API Logo"}

// @contact.name API Support Team
// @contact.email support@oddsmith.dev

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a service token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "punt-api",
		"env":     cfg.Env,
	})

	var db *gorm.DB
	if cfg.Persistence == app.PersistencePostgres {
		db, err = database.New(&cfg.DB)
		if err != nil {
			appLogger.Fatal(err, logger.Fields{"stage": "database"})
		}
	}

	registry, err := buildRegistry(cfg, appLogger)
	if err != nil {
		appLogger.Fatal(err, logger.Fields{"stage": "probability sources"})
	}

	htmlSanitizer := sanitizer.NewHTMLStripper()

	var tokenMaker security.Maker
	var writeGuard gin.HandlerFunc
	if cfg.Auth.Enabled {
		key := blake2b.Sum256([]byte(cfg.Auth.Secret))
		tokenMaker, err = security.NewPasetoMaker(string(key[:]))
		if err != nil {
			appLogger.Fatal(err, logger.Fields{"stage": "token maker"})
		}
		writeGuard = api.WriteGuard(tokenMaker)

		token, payload, tokenErr := tokenMaker.CreateToken("operator", cfg.Auth.TokenDuration, security.TokenScopeWrite)
		if tokenErr != nil {
			appLogger.Fatal(tokenErr, logger.Fields{"stage": "boot token"})
		}
		appLogger.Info("boot-time operator token minted", logger.Fields{
			"token":      token,
			"expires_at": payload.ExpiredAt,
		})
	}

	container := deps.NewContainer(db, tokenMaker, htmlSanitizer, appLogger)

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	mounter := router.NewMounter(container)
	mounter.Public(r).
		Mount(func(g *gin.RouterGroup, _ *deps.Container) {
			g.GET("/healthz", api.HealthCheck)
		}).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			betting.Init(g, betting.Dependencies{
				DB:         c.DB,
				Config:     &cfg.Betting,
				Registry:   registry,
				Sanitizer:  c.Sanitizer,
				Logger:     c.Logger,
				WriteGuard: writeGuard,
			})
		})

	apiDoc.Init(r)

	appLogger.Info("starting punt API server", logger.Fields{
		"host":        cfg.AppHost,
		"port":        cfg.AppPort,
		"persistence": cfg.Persistence,
		"auth":        cfg.Auth.Enabled,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		appLogger.Fatal(err, logger.Fields{"stage": "listen"})
	}
}

// buildRegistry wires a probability source into each configured market lane.
// Sources are shared between lanes that name the same kind, so a remote model
// service gets one client and one cache no matter how many lanes use it.
func buildRegistry(cfg *app.Config, appLogger logger.Logger) (*probability.Registry, error) {
	var predictionCache cache.Cache[probability.Prediction]
	if cfg.Sources.CacheTTL > 0 {
		switch cfg.Cache.Backend {
		case cache.RedisBackend:
			predictionCache = cache.NewCache[probability.Prediction](cache.RedisBackend, &cache.RedisOptions{
				Addr:      cfg.Cache.RedisAddr,
				Password:  cfg.Cache.RedisPassword,
				DB:        cfg.Cache.RedisDB,
				PoolSize:  cfg.Cache.RedisPoolSize,
				OpTimeout: cfg.Cache.OpTimeout,
			})
		default:
			predictionCache = cache.NewCache[probability.Prediction](cache.MemoryBackend)
		}
	}

	built := make(map[string]probability.Source)
	build := func(kind string) (probability.Source, error) {
		if src, ok := built[kind]; ok {
			return src, nil
		}

		var src probability.Source
		var err error
		switch kind {
		case app.SourceStatic:
			src, err = probability.NewStaticSource("static", cfg.Sources.StaticProbability)
		case app.SourceRatings:
			src = probability.NewRatingsSource("power-ratings", cfg.Sources.RatingsScale)
		case app.SourceRemote:
			src = probability.NewRemoteSource("model-service", cfg.Sources.RemoteURL, cfg.Sources.RemoteTimeout)
		default:
			err = fmt.Errorf("unknown probability source kind %q", kind)
		}
		if err != nil {
			return nil, err
		}

		if predictionCache != nil {
			src = probability.NewCachedSource(src, predictionCache, cfg.Sources.CacheTTL, appLogger)
		}
		built[kind] = src
		return src, nil
	}

	registry := probability.NewRegistry()
	lanes := map[string]string{
		models.MarketMoneyline: cfg.Sources.Moneyline,
		models.MarketSpread:    cfg.Sources.Spread,
		models.MarketTotal:     cfg.Sources.Total,
	}
	for lane, kind := range lanes {
		src, err := build(kind)
		if err != nil {
			return nil, err
		}
		registry.Register(lane, src)
	}

	return registry, nil
}
