package betting

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oddsmith/punt/app/api"
	"github.com/oddsmith/punt/internal/logger"
	"github.com/oddsmith/punt/internal/validator"
	"github.com/oddsmith/punt/models"
)

// GetBets godoc
// @Summary List bet history
// @Description Retrieves a filtered, sorted page of the bet ledger, placed and passed-on offers alike
// @Tags betting
// @Produce json
// @Param market query string false "Filter by market name"
// @Param result query string false "Filter by result" Enums(open, win, loss)
// @Param placed_only query bool false "Only bets with a non-zero stake"
// @Param sort_by query string false "Sort field" Enums(created_at, settled_at, ev, stake, decimal_odds) default(created_at)
// @Param sort_order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} api.Response{data=[]BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets [get]
func (h *Handler) GetBets(c *gin.Context) {
	var filters ListBetsFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	filters.SanitizeAndValidate(v, h.sanitizer)
	if !v.Valid() {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	result, err := h.service.ListBets(c.Request.Context(), &filters)
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetBets"})
		api.InternalErrorResponse(c, "Failed to fetch bets")
		return
	}

	meta := api.NewPaginationMeta(result.Page, result.PerPage, result.Total)
	api.SuccessResponseWithMeta(c, 200, "Bets retrieved successfully", result.Bets, meta)
}

// GetBetByID godoc
// @Summary Get bet details
// @Description Get a single ledger record, open or settled
// @Tags betting
// @Produce json
// @Param id path string true "Bet ID"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id} [get]
func (h *Handler) GetBetByID(c *gin.Context) {
	betID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid bet ID format")
		return
	}

	bet, err := h.service.GetBet(c.Request.Context(), betID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Bet")
			return
		}
		h.logger.Error(err, logger.Fields{"handler": "GetBetByID", "bet_id": betID.String()})
		api.InternalErrorResponse(c, "Failed to fetch bet")
		return
	}

	api.SuccessResponse(c, 200, "Bet retrieved successfully", bet)
}

// GetBankroll godoc
// @Summary Get the bankroll
// @Description Current paper-trading balance, its baseline, and running profit
// @Tags bankroll
// @Produce json
// @Success 200 {object} api.Response{data=BankrollResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bankroll [get]
func (h *Handler) GetBankroll(c *gin.Context) {
	bankroll, err := h.service.GetBankroll(c.Request.Context())
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetBankroll"})
		api.InternalErrorResponse(c, "Failed to fetch bankroll")
		return
	}

	api.SuccessResponse(c, 200, "Bankroll retrieved successfully", bankroll)
}

// GetPolicy godoc
// @Summary Get the staking policy
// @Description The Kelly fraction, stake cap, and EV threshold currently in force
// @Tags policy
// @Produce json
// @Success 200 {object} api.Response{data=Policy}
// @Router /api/v1/policy [get]
func (h *Handler) GetPolicy(c *gin.Context) {
	policy := h.service.GetPolicy(c.Request.Context())
	api.SuccessResponse(c, 200, "Policy retrieved successfully", policy)
}

// GetStats godoc
// @Summary Get performance statistics
// @Description Lifetime win rate, ROI, and profit against the current baseline
// @Tags stats
// @Produce json
// @Success 200 {object} api.Response{data=PerformanceStats}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "GetStats"})
		api.InternalErrorResponse(c, "Failed to compute statistics")
		return
	}

	api.SuccessResponse(c, 200, "Statistics retrieved successfully", stats)
}

// GetMarkets godoc
// @Summary List known markets
// @Description Market names with a registered probability source
// @Tags markets
// @Produce json
// @Success 200 {object} api.Response{data=[]string}
// @Router /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	markets := h.service.Markets(c.Request.Context())
	api.ListResponse(c, "Markets retrieved successfully", markets, len(markets))
}
