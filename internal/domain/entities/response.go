package entities

import "time"

// SurchargeSelection is the client-selected subset of optional services applied
// when a response is accepted. Each service is independently toggle-able; the
// response total is the base value plus the selected surcharges.
type SurchargeSelection struct {
	Palete        bool `json:"palete"`
	Urgente       bool `json:"urgente"`
	Fragil        bool `json:"fragil"`
	CargaDedicada bool `json:"carga_dedicada"`
}

// Response is a carrier's priced offer against one quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cotacao_id-index): cotacao_id
//
// Invariants:
//   - at most one response per (cotacao_id, transportadora_id) pair
//   - within a quotation, at most one response has Aceita=true
type Response struct {
	ID               string `json:"id"`
	CotacaoID        string `json:"cotacao_id"`
	TransportadoraID string `json:"transportadora_id"`

	ValorBase          float64 `json:"valor_base"`
	ValorPalete        float64 `json:"valor_palete,omitempty"`
	ValorUrgente       float64 `json:"valor_urgente,omitempty"`
	ValorFragil        float64 `json:"valor_fragil,omitempty"`
	ValorCargaDedicada float64 `json:"valor_carga_dedicada,omitempty"`
	ValorTotal         float64 `json:"valor_total"`

	PrazoEntregaDias int        `json:"prazo_entrega_dias,omitempty"`
	DataEntrega      *time.Time `json:"data_entrega,omitempty"`
	Descricao        string     `json:"descricao,omitempty"`

	Aceita    bool `json:"aceita"`
	Rejeitada bool `json:"rejeitada"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResponseID derives the response primary key. Using the pair as PK makes the
// one-bid-per-carrier invariant hold at the table level.
func ResponseID(cotacaoID, transportadoraID string) string {
	return cotacaoID + "#" + transportadoraID
}

// Total computes the response value for a surcharge selection. Surcharges
// priced at zero contribute nothing regardless of selection.
func (r Response) Total(sel SurchargeSelection) float64 {
	total := r.ValorBase
	if sel.Palete && r.ValorPalete > 0 {
		total += r.ValorPalete
	}
	if sel.Urgente && r.ValorUrgente > 0 {
		total += r.ValorUrgente
	}
	if sel.Fragil && r.ValorFragil > 0 {
		total += r.ValorFragil
	}
	if sel.CargaDedicada && r.ValorCargaDedicada > 0 {
		total += r.ValorCargaDedicada
	}
	return total
}
