package request

import (
	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase"
)

type RouteEndpointRequest struct {
	Cidade string `json:"cidade" binding:"required"`
	Estado string `json:"estado"`
	CEP    string `json:"cep"`
}

type ServiceFlagsRequest struct {
	Palete        bool `json:"palete"`
	Urgente       bool `json:"urgente"`
	Fragil        bool `json:"fragil"`
	CargaDedicada bool `json:"carga_dedicada"`
}

// CreateQuotationRequest is the shipper-facing payload for opening a
// quotation. TempoCotacaoMinutos is optional; out-of-range values are clamped
// by the use case.
type CreateQuotationRequest struct {
	Titulo              string               `json:"titulo"`
	Descricao           string               `json:"descricao"`
	Origem              RouteEndpointRequest `json:"origem" binding:"required"`
	Destino             RouteEndpointRequest `json:"destino" binding:"required"`
	ProdutoNome         string               `json:"produto_nome" binding:"required"`
	ProdutoNCM          string               `json:"produto_ncm"`
	PesoKg              float64              `json:"peso_kg"`
	ValorNotaFiscal     float64              `json:"valor_nota_fiscal"`
	Servicos            ServiceFlagsRequest  `json:"servicos"`
	TempoCotacaoMinutos int                  `json:"tempo_cotacao_minutos"`
}

func (r CreateQuotationRequest) ToInput() usecase.CreateQuotationInput {
	return usecase.CreateQuotationInput{
		Titulo:          r.Titulo,
		Descricao:       r.Descricao,
		Origem:          entities.RouteEndpoint(r.Origem),
		Destino:         entities.RouteEndpoint(r.Destino),
		ProdutoNome:     r.ProdutoNome,
		ProdutoNCM:      r.ProdutoNCM,
		PesoKg:          r.PesoKg,
		ValorNotaFiscal: r.ValorNotaFiscal,
		Servicos:        entities.ServiceFlags(r.Servicos),
		TempoMinutos:    r.TempoCotacaoMinutos,
	}
}

// RegisterDeliveryRequest carries the carrier's delivery proof and, when the
// charged amount diverged from the accepted bid, the value it actually billed.
type RegisterDeliveryRequest struct {
	DocumentoCanhoto         string  `json:"documento_canhoto" binding:"required"`
	ValorFinalTransportadora float64 `json:"valor_final_transportadora"`
}

func (r RegisterDeliveryRequest) ToInput() usecase.RegisterDeliveryInput {
	return usecase.RegisterDeliveryInput{
		DocumentoCanhoto:         r.DocumentoCanhoto,
		ValorFinalTransportadora: r.ValorFinalTransportadora,
	}
}

// FinalizeQuotationRequest is the client's closeout payload.
type FinalizeQuotationRequest struct {
	ValorFinalCliente    float64 `json:"valor_final_cliente" binding:"required"`
	EntregaProdutosAMais bool    `json:"entrega_produtos_a_mais"`
	Observacoes          string  `json:"observacoes"`
}

func (r FinalizeQuotationRequest) ToInput() usecase.FinalizeInput {
	return usecase.FinalizeInput{
		ValorFinalCliente: r.ValorFinalCliente,
		ProdutosAMais:     r.EntregaProdutosAMais,
		Observacoes:       r.Observacoes,
	}
}

type ContestQuotationRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}
