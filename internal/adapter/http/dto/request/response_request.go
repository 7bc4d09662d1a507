package request

import (
	"errors"
	"time"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase"
)

var ErrInvalidDeliveryDate = errors.New("invalid delivery date")

// SubmitResponseRequest is the carrier-facing bid payload. DataEntrega accepts
// RFC3339 or a plain date (2006-01-02).
type SubmitResponseRequest struct {
	Valor              float64 `json:"valor" binding:"required"`
	ValorPalete        float64 `json:"valor_palete"`
	ValorUrgente       float64 `json:"valor_urgente"`
	ValorFragil        float64 `json:"valor_fragil"`
	ValorCargaDedicada float64 `json:"valor_carga_dedicada"`
	PrazoEntregaDias   int     `json:"prazo_entrega_dias"`
	DataEntrega        string  `json:"data_entrega"`
	Descricao          string  `json:"descricao"`
}

func (r SubmitResponseRequest) ToInput() (usecase.SubmitResponseInput, error) {
	in := usecase.SubmitResponseInput{
		Valor:              r.Valor,
		ValorPalete:        r.ValorPalete,
		ValorUrgente:       r.ValorUrgente,
		ValorFragil:        r.ValorFragil,
		ValorCargaDedicada: r.ValorCargaDedicada,
		PrazoEntregaDias:   r.PrazoEntregaDias,
		Descricao:          r.Descricao,
	}
	if r.DataEntrega != "" {
		parsed, err := parseDeliveryDate(r.DataEntrega)
		if err != nil {
			return usecase.SubmitResponseInput{}, err
		}
		in.DataEntrega = &parsed
	}
	return in, nil
}

func parseDeliveryDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		// Plain dates mean end of that day.
		return t.UTC().Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, ErrInvalidDeliveryDate
}

// AcceptResponseRequest carries the client-selected surcharge subset applied
// to the accepted bid.
type AcceptResponseRequest struct {
	Servicos ServiceFlagsRequest `json:"servicos"`
}

func (r AcceptResponseRequest) ToSelection() entities.SurchargeSelection {
	return entities.SurchargeSelection(r.Servicos)
}
