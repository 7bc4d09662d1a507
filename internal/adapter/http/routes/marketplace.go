package routes

import (
	"cotafrete/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCotacoes   = "/cotacoes"
	PathAvaliacoes = "/avaliacoes"
	PathFinanceiro = "/financeiro"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	quotationHandler *handlers.QuotationHandler,
	responseHandler *handlers.ResponseHandler,
	ratingHandler *handlers.RatingHandler,
	financeHandler *handlers.FinanceHandler,
) {
	cotacoes := rg.Group(PathCotacoes)
	{
		cotacoes.POST("", quotationHandler.CreateQuotation)
		cotacoes.GET("", quotationHandler.ListMyQuotations)
		cotacoes.GET("/disponiveis", quotationHandler.ListAvailableQuotations)
		cotacoes.GET("/:cotacao_id", quotationHandler.GetQuotation)
		cotacoes.POST("/:cotacao_id/cancelar", quotationHandler.CancelQuotation)
		cotacoes.POST("/:cotacao_id/pagamento/confirmar", quotationHandler.ConfirmPayment)
		cotacoes.POST("/:cotacao_id/coleta", quotationHandler.ConfirmPickup)
		cotacoes.POST("/:cotacao_id/entrega", quotationHandler.RegisterDelivery)
		cotacoes.POST("/:cotacao_id/finalizar", quotationHandler.FinalizeQuotation)
		cotacoes.POST("/:cotacao_id/contestar", quotationHandler.ContestQuotation)

		cotacoes.POST("/:cotacao_id/respostas", responseHandler.SubmitResponse)
		cotacoes.GET("/:cotacao_id/respostas", responseHandler.ListResponses)
		cotacoes.POST("/:cotacao_id/respostas/:resposta_id/aceitar", responseHandler.AcceptResponse)
		cotacoes.POST("/:cotacao_id/respostas/:resposta_id/rejeitar", responseHandler.RejectResponse)

		cotacoes.POST("/:cotacao_id/avaliacoes/transportadora", ratingHandler.RateCarrier)
		cotacoes.POST("/:cotacao_id/avaliacoes/cliente", ratingHandler.RateClient)
	}

	avaliacoes := rg.Group(PathAvaliacoes)
	{
		avaliacoes.GET("/:user_id", ratingHandler.ListRatings)
	}

	financeiro := rg.Group(PathFinanceiro)
	{
		financeiro.GET("/transportadora", financeHandler.GetCarrierLedger)
		financeiro.GET("/perfil/cliente", financeHandler.GetClientProfile)
		financeiro.GET("/perfil/transportadora", financeHandler.GetCarrierProfile)
	}
}
