package betting

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/oddsmith/punt/app/api"
	"github.com/oddsmith/punt/internal/logger"
	"github.com/oddsmith/punt/internal/sanitizer"
	"github.com/oddsmith/punt/models"
)

// Handler handles HTTP requests for betting operations
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
	validator *validator.Validate
}

// NewHandler creates a new betting handler
func NewHandler(service Service, sanitizer sanitizer.HTMLStripperer, logger logger.Logger) *Handler {
	return &Handler{
		service:   service,
		sanitizer: sanitizer,
		logger:    logger,
		validator: validator.New(),
	}
}

// EvaluateOffer godoc
// @Summary Evaluate a market offer
// @Description Run one quoted offer through the decision pipeline and record the result, BET or NO BET
// @Tags betting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EvaluateOfferRequest true "Offer to evaluate"
// @Success 201 {object} api.Response{data=EvaluationResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/evaluate [post]
func (h *Handler) EvaluateOffer(c *gin.Context) {
	var req EvaluateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	req.Sanitize(h.sanitizer)

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	eval, err := h.service.EvaluateOffer(c.Request.Context(), &req)
	if err != nil {
		h.respondEvaluateError(c, err, "EvaluateOffer")
		return
	}

	h.logger.Info("offer evaluated", logger.Fields{
		"bet_id":   eval.ID.String(),
		"market":   eval.Market,
		"side":     eval.Side,
		"decision": eval.Decision,
		"ev":       eval.EV,
		"stake":    eval.Stake,
	})

	api.CreatedResponse(c, "Offer evaluated successfully", eval)
}

// EvaluateBatch godoc
// @Summary Evaluate a slate of offers
// @Description Evaluate up to 100 offers in one call; each offer succeeds or fails on its own
// @Tags betting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EvaluateBatchRequest true "Offers to evaluate"
// @Success 200 {object} api.Response{data=BatchEvaluationResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/evaluate/batch [post]
func (h *Handler) EvaluateBatch(c *gin.Context) {
	var req EvaluateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	req.Sanitize(h.sanitizer)

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	result, err := h.service.EvaluateBatch(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error(err, logger.Fields{"handler": "EvaluateBatch"})
		api.InternalErrorResponse(c, "Failed to evaluate offers")
		return
	}

	h.logger.Info("batch evaluated", logger.Fields{
		"offers":    len(req.Offers),
		"evaluated": result.Evaluated,
		"failed":    result.Failed,
	})

	api.SuccessResponse(c, 200, "Batch evaluated successfully", result)
}

// SettleBet godoc
// @Summary Settle an open bet
// @Description Close an open bet as win or loss and apply its pnl to the bankroll
// @Tags betting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bet ID"
// @Param request body SettleBetRequest true "Settlement outcome"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id}/settle [post]
func (h *Handler) SettleBet(c *gin.Context) {
	betID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid bet ID format")
		return
	}

	var req SettleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	bet, err := h.service.SettleBet(c.Request.Context(), betID, req.BetResult())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBetNotOpen):
			api.ErrorResponse(c, 404, "BET_NOT_OPEN", err.Error(), nil)
		case errors.Is(err, models.ErrInvalidOutcome):
			api.ValidationErrorResponse(c, err.Error())
		default:
			h.logger.Error(err, logger.Fields{"handler": "SettleBet", "bet_id": betID.String()})
			api.InternalErrorResponse(c, "Failed to settle bet")
		}
		return
	}

	h.logger.Info("bet settled", logger.Fields{
		"bet_id":         bet.ID.String(),
		"result":         bet.Result,
		"pnl":            bet.PNL,
		"bankroll_after": bet.BankrollAfter,
	})

	api.SuccessResponse(c, 200, "Bet settled successfully", bet)
}

// ResetBankroll godoc
// @Summary Reset the bankroll
// @Description Clear the bet history and rebaseline the bankroll; omit the body to restore the configured starting amount
// @Tags bankroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ResetBankrollRequest false "Optional reset amount"
// @Success 200 {object} api.Response{data=BankrollResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bankroll/reset [post]
func (h *Handler) ResetBankroll(c *gin.Context) {
	var req ResetBankrollRequest

	// The body is optional; an empty post restores the configured
	// starting bankroll.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.ValidationErrorResponse(c, h.formatValidationErrors(err))
			return
		}
		if err := h.validator.Struct(&req); err != nil {
			api.ValidationErrorResponse(c, h.formatValidationErrors(err))
			return
		}
	}

	bankroll, err := h.service.ResetBankroll(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, models.ErrInvalidBankroll) {
			api.ValidationErrorResponse(c, err.Error())
			return
		}
		h.logger.Error(err, logger.Fields{"handler": "ResetBankroll"})
		api.InternalErrorResponse(c, "Failed to reset bankroll")
		return
	}

	h.logger.Info("bankroll reset", logger.Fields{"balance": bankroll.Balance})

	api.SuccessResponse(c, 200, "Bankroll reset successfully", bankroll)
}

// UpdatePolicy godoc
// @Summary Replace the staking policy
// @Description Swap the runtime staking policy; open bets are untouched and the new policy applies from the next evaluation
// @Tags policy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePolicyRequest true "New staking policy"
// @Success 200 {object} api.Response{data=Policy}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/policy [put]
func (h *Handler) UpdatePolicy(c *gin.Context) {
	var req UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	policy, err := h.service.UpdatePolicy(c.Request.Context(), req.Policy())
	if err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	h.logger.Info("policy updated", logger.Fields{
		"kelly_fraction":       policy.KellyFraction,
		"max_stake_pct":        policy.MaxStakePct,
		"default_ev_threshold": policy.DefaultEVThreshold,
	})

	api.UpdatedResponse(c, "Policy updated successfully", policy)
}

// Helper methods

// respondEvaluateError maps pipeline failures onto HTTP codes. Bad input is
// the caller's fault, a failing probability source is an upstream fault, and
// everything else is ours.
func (h *Handler) respondEvaluateError(c *gin.Context, err error, handlerName string) {
	switch {
	case errors.Is(err, models.ErrInvalidOddsFormat):
		api.ErrorResponse(c, 400, "INVALID_ODDS_FORMAT", err.Error(), nil)
	case errors.Is(err, models.ErrUnknownMarket):
		api.ErrorResponse(c, 400, "UNKNOWN_MARKET", err.Error(), nil)
	case errors.Is(err, models.ErrProbabilitySource):
		api.BadGatewayResponse(c, err.Error())
	case errors.Is(err, models.ErrDuplicateBet):
		api.ConflictResponse(c, err.Error())
	default:
		h.logger.Error(err, logger.Fields{"handler": handlerName})
		api.InternalErrorResponse(c, "Failed to evaluate offer")
	}
}

func (h *Handler) formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, fieldError := range validationErrors {
			errors[fieldError.Field()] = h.getValidationMessage(fieldError)
		}
		return errors
	}
	return err.Error()
}

func (h *Handler) getValidationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Value must be one of: " + fieldError.Param()
	case "gt":
		return "Value must be greater than " + fieldError.Param()
	case "gte":
		return "Value must be greater than or equal to " + fieldError.Param()
	case "lt":
		return "Value must be less than " + fieldError.Param()
	case "lte":
		return "Value must be less than or equal to " + fieldError.Param()
	case "min":
		return "Value must be at least " + fieldError.Param()
	case "max":
		return "Value must be at most " + fieldError.Param()
	default:
		return "Invalid value"
	}
}
