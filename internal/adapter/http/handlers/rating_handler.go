package handlers

import (
	"context"
	"errors"
	"net/http"

	request "cotafrete/internal/adapter/http/dto/request"
	response "cotafrete/internal/adapter/http/dto/response"
	"cotafrete/internal/adapter/http/middleware"
	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase"
	"cotafrete/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRatingPayload = pkg.NewDomainErrorSimple("INVALID_RATING_INPUT", "Invalid rating payload", http.StatusBadRequest)

// RatingHandler handles HTTP requests for the mutual delivery evaluations.

type RatingHandler struct {
	usecase usecase.IRatingUseCase
}

func NewRatingHandler(uc usecase.IRatingUseCase) *RatingHandler {
	return &RatingHandler{usecase: uc}
}

// RateCarrier records the client's evaluation of the selected carrier.
func (h *RatingHandler) RateCarrier(c *gin.Context) {
	h.rate(c, h.usecase.RateCarrier)
}

// RateClient records the carrier's evaluation of the client.
func (h *RatingHandler) RateClient(c *gin.Context) {
	h.rate(c, h.usecase.RateClient)
}

// ListRatings returns the ratings received by a user. ?direcao= filters by
// rating direction and defaults to the carrier-facing one.
func (h *RatingHandler) ListRatings(c *gin.Context) {
	direcao := entities.RatingDirection(c.Query("direcao"))
	if direcao == "" {
		direcao = entities.RatingClienteParaTransportadora
	}

	items, err := h.usecase.ListForTarget(c.Request.Context(), c.Param("user_id"), direcao)
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewListEnvelope(response.FromRatings(items)))
}

func (h *RatingHandler) rate(
	c *gin.Context,
	rater func(ctx context.Context, actor entities.Principal, cotacaoID string, in usecase.RateInput) (entities.Rating, error),
) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.RateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatingPayload.HTTPStatus, errInvalidRatingPayload.ToHTTPError())
		return
	}

	rating, err := rater(c.Request.Context(), actor, c.Param("cotacao_id"), payload.ToInput())
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRating(rating))
}

func mapRatingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidRatingScore):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound), errors.Is(err, usecase.ErrResponseNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner), errors.Is(err, usecase.ErrNotSelectedCarrier):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRatingNotAllowed):
		return pkg.NewDomainErrorSimple("RATING_NOT_ALLOWED", "Quotation status does not allow rating", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyRated):
		return pkg.NewDomainErrorSimple("ALREADY_RATED", "This quotation was already rated by this side", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
