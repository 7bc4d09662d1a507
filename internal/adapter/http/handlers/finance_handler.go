package handlers

import (
	"errors"
	"net/http"

	response "cotafrete/internal/adapter/http/dto/response"
	"cotafrete/internal/adapter/http/middleware"
	"cotafrete/internal/usecase"
	"cotafrete/pkg"

	"github.com/gin-gonic/gin"
)

// FinanceHandler handles HTTP requests for the monthly ledger and loyalty
// balances.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

// GetCarrierLedger returns the authenticated carrier's settlement buckets,
// optionally scoped to ?mes=YYYY-MM.
func (h *FinanceHandler) GetCarrierLedger(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	buckets, err := h.usecase.GetCarrierLedger(c.Request.Context(), actor, c.Query("mes"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewListEnvelope(response.FromMonthlyLedgers(buckets)))
}

// GetClientProfile returns the authenticated client's balances and quota.
func (h *FinanceHandler) GetClientProfile(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	profile, err := h.usecase.GetClientProfile(c.Request.Context(), actor)
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if profile.UserID == "" {
		profile.UserID = actor.ID
	}

	c.JSON(http.StatusOK, response.FromClientProfile(profile))
}

// GetCarrierProfile returns the authenticated carrier's balances.
func (h *FinanceHandler) GetCarrierProfile(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	profile, err := h.usecase.GetCarrierProfile(c.Request.Context(), actor)
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if profile.UserID == "" {
		profile.UserID = actor.ID
	}

	c.JSON(http.StatusOK, response.FromCarrierProfile(profile))
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotCarrier), errors.Is(err, usecase.ErrNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
