package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "cotafrete/internal/adapter/http/dto/request"
	response "cotafrete/internal/adapter/http/dto/response"
	"cotafrete/internal/adapter/http/middleware"
	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase"
	"cotafrete/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errMissingPrincipal        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// QuotationHandler handles HTTP requests for the quotation lifecycle.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation opens a new quotation for the authenticated client.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

// GetQuotation returns one quotation. An owner opening a quotation with
// pending responses for the first time moves it to visualizada.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	q, err := h.usecase.GetForActor(c.Request.Context(), actor, c.Param("cotacao_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// ListMyQuotations returns the authenticated client's quotations, optionally
// filtered by ?status= and paged with ?page= / ?limit=.
func (h *QuotationHandler) ListMyQuotations(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	status := entities.QuotationStatus(c.Query("status"))
	items, err := h.usecase.ListByCliente(c.Request.Context(), actor, status)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page := paginate(items, c.Query("page"), c.Query("limit"))
	c.JSON(http.StatusOK, response.ListEnvelope[response.QuotationResponse]{
		Data:  response.FromQuotations(page),
		Total: len(items),
	})
}

// paginate applies 1-based page/limit windowing. Bad or absent parameters fall
// back to page 1 with the default page size.
func paginate(items []entities.Quotation, pageStr, limitStr string) []entities.Quotation {
	const defaultLimit = 20

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []entities.Quotation{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ListAvailableQuotations returns the open marketplace for carriers.
func (h *QuotationHandler) ListAvailableQuotations(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	items, err := h.usecase.ListAvailable(c.Request.Context(), actor)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewListEnvelope(response.FromQuotations(items)))
}

func (h *QuotationHandler) CancelQuotation(c *gin.Context) {
	h.simpleTransition(c, h.usecase.Cancel)
}

func (h *QuotationHandler) ConfirmPayment(c *gin.Context) {
	h.simpleTransition(c, h.usecase.ConfirmPayment)
}

func (h *QuotationHandler) ConfirmPickup(c *gin.Context) {
	h.simpleTransition(c, h.usecase.ConfirmPickup)
}

// RegisterDelivery records the carrier's delivery proof.
func (h *QuotationHandler) RegisterDelivery(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.RegisterDeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.RegisterDelivery(c.Request.Context(), actor, c.Param("cotacao_id"), payload.ToInput())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// FinalizeQuotation closes the quotation and triggers the settlement. A
// partial settlement still returns the finalized quotation; the failure is
// logged for reconciliation.
func (h *QuotationHandler) FinalizeQuotation(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.FinalizeQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	cotacaoID := c.Param("cotacao_id")
	q, err := h.usecase.Finalize(c.Request.Context(), actor, cotacaoID, payload.ToInput())
	if err != nil {
		var partial *usecase.PartialSettlementError
		if errors.As(err, &partial) {
			log.Printf("[quotation][handler] finalize partial settlement cotacao_id=%s err=%v", cotacaoID, partial.Err)
			c.JSON(http.StatusOK, response.FromQuotation(q))
			return
		}
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// ContestQuotation opens a dispute instead of finalizing.
func (h *QuotationHandler) ContestQuotation(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.ContestQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Contest(c.Request.Context(), actor, c.Param("cotacao_id"), payload.Motivo)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) simpleTransition(
	c *gin.Context,
	transition func(ctx context.Context, actor entities.Principal, id string) (entities.Quotation, error),
) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	q, err := transition(c.Request.Context(), actor, c.Param("cotacao_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidQuotationInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotClient), errors.Is(err, usecase.ErrNotCarrier),
		errors.Is(err, usecase.ErrNotOwner), errors.Is(err, usecase.ErrNotSelectedCarrier),
		errors.Is(err, usecase.ErrNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Quotation status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrRatingRequired):
		return pkg.NewDomainErrorSimple("RATING_REQUIRED", "A rating is required before this step", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDeliveryProofRequired):
		return pkg.NewDomainErrorSimple("DELIVERY_PROOF_REQUIRED", "Delivery proof document is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFinalValueRequired):
		return pkg.NewDomainErrorSimple("FINAL_VALUE_REQUIRED", "Final paid value is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContestReasonRequired):
		return pkg.NewDomainErrorSimple("CONTEST_REASON_REQUIRED", "Contestation reason is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotPremium):
		return pkg.NewDomainErrorSimple("PREMIUM_REQUIRED", "Only premium clients may cancel quotations", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCancelQuotaExceeded):
		return pkg.NewDomainErrorSimple("CANCEL_QUOTA_EXCEEDED", "Monthly cancellation quota exceeded", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrResponseNotFound):
		return pkg.NewDomainErrorSimple("RESPONSE_NOT_FOUND", "Response not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONFLICT", "Quotation was updated concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
