package response

import (
	"time"

	"cotafrete/internal/domain/entities"
)

type RouteEndpointResponse struct {
	Cidade string `json:"cidade"`
	Estado string `json:"estado,omitempty"`
	CEP    string `json:"cep,omitempty"`
}

type ServiceFlagsResponse struct {
	Palete        bool `json:"palete"`
	Urgente       bool `json:"urgente"`
	Fragil        bool `json:"fragil"`
	CargaDedicada bool `json:"carga_dedicada"`
}

type ContestationResponse struct {
	Motivo   string    `json:"motivo"`
	DataHora time.Time `json:"data_hora"`
}

type QuotationResponse struct {
	ID        string `json:"id"`
	ClienteID string `json:"cliente_id"`

	Titulo    string                `json:"titulo"`
	Descricao string                `json:"descricao,omitempty"`
	Origem    RouteEndpointResponse `json:"origem"`
	Destino   RouteEndpointResponse `json:"destino"`

	ProdutoNome     string  `json:"produto_nome"`
	ProdutoNCM      string  `json:"produto_ncm,omitempty"`
	PesoKg          float64 `json:"peso_kg"`
	ValorNotaFiscal float64 `json:"valor_nota_fiscal"`

	Servicos ServiceFlagsResponse `json:"servicos"`

	Status               string     `json:"status"`
	DataHoraFim          time.Time  `json:"data_hora_fim"`
	PrimeiraVisualizacao *time.Time `json:"primeira_visualizacao,omitempty"`

	RespostaSelecionadaID string `json:"resposta_selecionada_id,omitempty"`

	ValorOriginal            float64 `json:"valor_original,omitempty"`
	ValorFinalCliente        float64 `json:"valor_final_cliente,omitempty"`
	ValorFinalTransportadora float64 `json:"valor_final_transportadora,omitempty"`
	ValorFinalApurado        float64 `json:"valor_final_apurado,omitempty"`
	ValorComissao            float64 `json:"valor_comissao,omitempty"`
	DiferencaValor           float64 `json:"diferenca_valor,omitempty"`
	EntregaProdutosAMais     bool    `json:"entrega_produtos_a_mais,omitempty"`
	ObservacoesCliente       string  `json:"observacoes_cliente,omitempty"`

	AvaliacaoTransportadoraID string `json:"avaliacao_transportadora_id,omitempty"`
	AvaliacaoClienteID        string `json:"avaliacao_cliente_id,omitempty"`

	DocumentoCanhoto     string     `json:"documento_canhoto,omitempty"`
	DataColetaRealizada  *time.Time `json:"data_coleta_realizada,omitempty"`
	DataEntregaRealizada *time.Time `json:"data_entrega_realizada,omitempty"`
	DataHoraFinalizacao  *time.Time `json:"data_hora_finalizacao,omitempty"`

	Contestacao *ContestationResponse `json:"contestacao,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	resp := QuotationResponse{
		ID:                        q.ID,
		ClienteID:                 q.ClienteID,
		Titulo:                    q.Titulo,
		Descricao:                 q.Descricao,
		Origem:                    RouteEndpointResponse(q.Origem),
		Destino:                   RouteEndpointResponse(q.Destino),
		ProdutoNome:               q.ProdutoNome,
		ProdutoNCM:                q.ProdutoNCM,
		PesoKg:                    q.PesoKg,
		ValorNotaFiscal:           q.ValorNotaFiscal,
		Servicos:                  ServiceFlagsResponse(q.Servicos),
		Status:                    string(q.Status),
		DataHoraFim:               q.DataHoraFim,
		PrimeiraVisualizacao:      q.PrimeiraVisualizacao,
		RespostaSelecionadaID:     q.RespostaSelecionadaID,
		ValorOriginal:             q.ValorOriginal,
		ValorFinalCliente:         q.ValorFinalCliente,
		ValorFinalTransportadora:  q.ValorFinalTransportadora,
		ValorFinalApurado:         q.ValorFinalApurado,
		ValorComissao:             q.ValorComissao,
		DiferencaValor:            q.DiferencaValor,
		EntregaProdutosAMais:      q.EntregaProdutosAMais,
		ObservacoesCliente:        q.ObservacoesCliente,
		AvaliacaoTransportadoraID: q.AvaliacaoTransportadoraID,
		AvaliacaoClienteID:        q.AvaliacaoClienteID,
		DocumentoCanhoto:          q.DocumentoCanhoto,
		DataColetaRealizada:       q.DataColetaRealizada,
		DataEntregaRealizada:      q.DataEntregaRealizada,
		DataHoraFinalizacao:       q.DataHoraFinalizacao,
		CreatedAt:                 q.CreatedAt,
		UpdatedAt:                 q.UpdatedAt,
	}
	if q.Contestacao != nil {
		resp.Contestacao = &ContestationResponse{Motivo: q.Contestacao.Motivo, DataHora: q.Contestacao.DataHora}
	}
	return resp
}

func FromQuotations(items []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuotation(q))
	}
	return out
}
