package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation (cotação).
//
// Domain notes:
//   - aberta/em_andamento/visualizada are the bidding-eligible states.
//   - finalizada and cancelada are terminal; contestada is terminal for the
//     automated flow and requires manual resolution.

type QuotationStatus string

const (
	QuotationStatusAberta                QuotationStatus = "aberta"
	QuotationStatusEmAndamento           QuotationStatus = "em_andamento"
	QuotationStatusVisualizada           QuotationStatus = "visualizada"
	QuotationStatusAguardandoPagamento   QuotationStatus = "aguardando_pagamento"
	QuotationStatusAceita                QuotationStatus = "aceita"
	QuotationStatusEmTransito            QuotationStatus = "em_transito"
	QuotationStatusAguardandoConfirmacao QuotationStatus = "aguardando_confirmacao"
	QuotationStatusFinalizada            QuotationStatus = "finalizada"
	QuotationStatusCancelada             QuotationStatus = "cancelada"
	QuotationStatusContestada            QuotationStatus = "contestada"
)

// BiddableStatuses are the states in which a quotation still accepts carrier
// responses, provided its deadline has not elapsed.
var BiddableStatuses = []QuotationStatus{
	QuotationStatusAberta,
	QuotationStatusEmAndamento,
	QuotationStatusVisualizada,
}

func (s QuotationStatus) IsBiddable() bool {
	for _, b := range BiddableStatuses {
		if s == b {
			return true
		}
	}
	return false
}

func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusFinalizada || s == QuotationStatusCancelada || s == QuotationStatusContestada
}

// RouteEndpoint is one leg of the shipment route.
type RouteEndpoint struct {
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	CEP    string `json:"cep"`
}

// Contestation records a client dispute raised instead of finalization.
type Contestation struct {
	Motivo   string    `json:"motivo"`
	DataHora time.Time `json:"data_hora"`
}

// ServiceFlags marks the additional services requested for the shipment.
// Each flag maps to an independent per-response surcharge.
type ServiceFlags struct {
	Palete        bool `json:"palete"`
	Urgente       bool `json:"urgente"`
	Fragil        bool `json:"fragil"`
	CargaDedicada bool `json:"carga_dedicada"`
}

// Quotation is the shipment request aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cliente_id-index): cliente_id
//
// Invariants:
//   - RespostaSelecionadaID is set only in the accepted-or-later states and must
//     reference a response of this quotation.
//   - Version increments on every selection write; the accept transaction
//     conditions on it (optimistic concurrency).
type Quotation struct {
	ID        string `json:"id"`
	ClienteID string `json:"cliente_id"`

	Titulo    string        `json:"titulo"`
	Descricao string        `json:"descricao,omitempty"`
	Origem    RouteEndpoint `json:"origem"`
	Destino   RouteEndpoint `json:"destino"`

	ProdutoNome     string  `json:"produto_nome"`
	ProdutoNCM      string  `json:"produto_ncm,omitempty"`
	PesoKg          float64 `json:"peso_kg"`
	ValorNotaFiscal float64 `json:"valor_nota_fiscal"`

	Servicos ServiceFlags `json:"servicos"`

	DataHoraFim          time.Time       `json:"data_hora_fim"`
	Status               QuotationStatus `json:"status"`
	PrimeiraVisualizacao *time.Time      `json:"primeira_visualizacao,omitempty"`

	RespostaSelecionadaID string `json:"resposta_selecionada_id,omitempty"`

	// Finalization values, written by the settlement flow.
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

	Contestacao *Contestation `json:"contestacao,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsBiddable reports whether the quotation still accepts responses at the given
// instant. Expiration is a read-time predicate; expired quotations keep their
// last stored status until a write path moves them.
func (q Quotation) IsBiddable(now time.Time) bool {
	if !q.Status.IsBiddable() {
		return false
	}
	if q.DataHoraFim.IsZero() {
		return true
	}
	return now.Before(q.DataHoraFim)
}
