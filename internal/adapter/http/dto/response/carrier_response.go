package response

import (
	"time"

	"cotafrete/internal/domain/entities"
)

// CarrierResponse is a carrier bid as returned over HTTP.
type CarrierResponse struct {
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

func FromCarrierResponse(r entities.Response) CarrierResponse {
	return CarrierResponse{
		ID:                 r.ID,
		CotacaoID:          r.CotacaoID,
		TransportadoraID:   r.TransportadoraID,
		ValorBase:          r.ValorBase,
		ValorPalete:        r.ValorPalete,
		ValorUrgente:       r.ValorUrgente,
		ValorFragil:        r.ValorFragil,
		ValorCargaDedicada: r.ValorCargaDedicada,
		ValorTotal:         r.ValorTotal,
		PrazoEntregaDias:   r.PrazoEntregaDias,
		DataEntrega:        r.DataEntrega,
		Descricao:          r.Descricao,
		Aceita:             r.Aceita,
		Rejeitada:          r.Rejeitada,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func FromCarrierResponses(items []entities.Response) []CarrierResponse {
	out := make([]CarrierResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromCarrierResponse(r))
	}
	return out
}
