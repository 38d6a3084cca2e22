package betting

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oddsmith/punt/app/probability"
	"github.com/oddsmith/punt/internal/logger"
	"github.com/oddsmith/punt/internal/sanitizer"
)

// Dependencies represents the dependencies needed for the betting module
type Dependencies struct {
	DB        *gorm.DB // nil runs the module on the in-memory ledger alone
	Config    *Config
	Registry  *probability.Registry
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger

	// WriteGuard, when set, is attached to every mutating route.
	WriteGuard gin.HandlerFunc
}

// Init initializes the betting module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}

	if err := config.Validate(); err != nil {
		panic("Invalid betting configuration: " + err.Error())
	}

	ledger := NewLedger(config.StartingBankroll)
	agent := NewAgent(config, ledger, deps.Registry)

	var repo Repository
	if deps.DB != nil {
		repo = NewRepository(deps.DB)
	}

	srvs := NewService(deps.DB, repo, agent, ledger)

	// Rehydrate the ledger before any traffic; a no-op without a DB.
	if err := srvs.Restore(context.Background()); err != nil {
		panic("Failed to restore bet ledger: " + err.Error())
	}

	handler := NewHandler(srvs, deps.Sanitizer, deps.Logger)

	guard := deps.WriteGuard
	if guard == nil {
		guard = func(c *gin.Context) { c.Next() }
	}

	betsGroup := r.Group("/bets")
	betsGroup.GET("", handler.GetBets)
	betsGroup.GET("/:id", handler.GetBetByID)
	betsGroup.POST("/evaluate", guard, handler.EvaluateOffer)
	betsGroup.POST("/evaluate/batch", guard, handler.EvaluateBatch)
	betsGroup.POST("/:id/settle", guard, handler.SettleBet)

	bankrollGroup := r.Group("/bankroll")
	bankrollGroup.GET("", handler.GetBankroll)
	bankrollGroup.POST("/reset", guard, handler.ResetBankroll)

	policyGroup := r.Group("/policy")
	policyGroup.GET("", handler.GetPolicy)
	policyGroup.PUT("", guard, handler.UpdatePolicy)

	r.GET("/stats", handler.GetStats)
	r.GET("/markets", handler.GetMarkets)
}
