package handlers

import (
	"errors"
	"net/http"

	request "cotafrete/internal/adapter/http/dto/request"
	response "cotafrete/internal/adapter/http/dto/response"
	"cotafrete/internal/adapter/http/middleware"
	"cotafrete/internal/usecase"
	"cotafrete/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidResponsePayload = pkg.NewDomainErrorSimple("INVALID_RESPONSE_INPUT", "Invalid response payload", http.StatusBadRequest)

// ResponseHandler handles HTTP requests for carrier responses (bids).

type ResponseHandler struct {
	usecase usecase.IResponseUseCase
}

func NewResponseHandler(uc usecase.IResponseUseCase) *ResponseHandler {
	return &ResponseHandler{usecase: uc}
}

// SubmitResponse registers the authenticated carrier's bid on a quotation.
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.SubmitResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResponsePayload.HTTPStatus, errInvalidResponsePayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidResponsePayload.HTTPStatus, errInvalidResponsePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), actor, c.Param("cotacao_id"), in)
	if err != nil {
		appErr := mapResponseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCarrierResponse(created))
}

// ListResponses returns the quotation's responses under the caller's
// visibility: owners see all, carriers only their own.
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), actor, c.Param("cotacao_id"))
	if err != nil {
		appErr := mapResponseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewListEnvelope(response.FromCarrierResponses(items)))
}

// AcceptResponse selects the winning bid. The body carries the surcharge
// subset the client opted into; an empty body means base value only.
func (h *ResponseHandler) AcceptResponse(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.AcceptResponseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidResponsePayload.HTTPStatus, errInvalidResponsePayload.ToHTTPError())
			return
		}
	}

	accepted, err := h.usecase.Accept(c.Request.Context(), actor, c.Param("cotacao_id"), c.Param("resposta_id"), payload.ToSelection())
	if err != nil {
		appErr := mapResponseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCarrierResponse(accepted))
}

// RejectResponse flags a bid as rejected. Idempotent.
func (h *ResponseHandler) RejectResponse(c *gin.Context) {
	actor, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	if err := h.usecase.Reject(c.Request.Context(), actor, c.Param("cotacao_id"), c.Param("resposta_id")); err != nil {
		appErr := mapResponseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapResponseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidResponseID),
		errors.Is(err, usecase.ErrInvalidBidValue), errors.Is(err, usecase.ErrInvalidSurcharge),
		errors.Is(err, usecase.ErrInvalidDeliveryDate), errors.Is(err, usecase.ErrDeliveryDateTooFar):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidValueTooHigh):
		return pkg.NewDomainErrorSimple("BID_VALUE_TOO_HIGH", "Bid value exceeds the platform ceiling", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrResponseNotFound), errors.Is(err, usecase.ErrResponseNotInQuotation):
		return pkg.NewDomainErrorSimple("RESPONSE_NOT_FOUND", "Response not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotCarrier), errors.Is(err, usecase.ErrNotOwner), errors.Is(err, usecase.ErrSelfDealing):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotationNotBiddable), errors.Is(err, usecase.ErrQuotationExpired):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_BIDDABLE", "Quotation not available for responses", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateResponse):
		return pkg.NewDomainErrorSimple("DUPLICATE_RESPONSE", "Carrier already responded to this quotation", http.StatusConflict)
	case errors.Is(err, usecase.ErrResponseAlreadyAccepted), errors.Is(err, usecase.ErrResponseRejected),
		errors.Is(err, usecase.ErrCannotRejectAccepted), errors.Is(err, usecase.ErrAcceptConflict):
		return pkg.NewDomainErrorSimple("RESPONSE_CONFLICT", "Response state does not allow this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
