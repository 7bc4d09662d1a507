package response

import (
	"time"

	"cotafrete/internal/domain/entities"
)

type LedgerEntryResponse struct {
	CotacaoID       string    `json:"cotacao_id"`
	ValorCotacao    float64   `json:"valor_cotacao"`
	ValorComissao   float64   `json:"valor_comissao"`
	DataFinalizacao time.Time `json:"data_finalizacao"`
}

type MonthlyLedgerResponse struct {
	ID                 string                `json:"id"`
	TransportadoraID   string                `json:"transportadora_id"`
	MesReferencia      string                `json:"mes_referencia"`
	Cotacoes           []LedgerEntryResponse `json:"cotacoes"`
	ValorTotalCotacoes float64               `json:"valor_total_cotacoes"`
	ValorTotalComissao float64               `json:"valor_total_comissao"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func FromMonthlyLedger(l entities.MonthlyLedger) MonthlyLedgerResponse {
	entries := make([]LedgerEntryResponse, 0, len(l.Cotacoes))
	for _, e := range l.Cotacoes {
		entries = append(entries, LedgerEntryResponse{
			CotacaoID:       e.CotacaoID,
			ValorCotacao:    e.ValorCotacao,
			ValorComissao:   e.ValorComissao,
			DataFinalizacao: e.DataFinalizacao,
		})
	}
	return MonthlyLedgerResponse{
		ID:                 l.ID,
		TransportadoraID:   l.TransportadoraID,
		MesReferencia:      l.MesReferencia,
		Cotacoes:           entries,
		ValorTotalCotacoes: l.ValorTotalCotacoes,
		ValorTotalComissao: l.ValorTotalComissao,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func FromMonthlyLedgers(items []entities.MonthlyLedger) []MonthlyLedgerResponse {
	out := make([]MonthlyLedgerResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FromMonthlyLedger(l))
	}
	return out
}

type ValueDeltaEventResponse struct {
	CotacaoID      string    `json:"cotacao_id"`
	ValorOriginal  float64   `json:"valor_original"`
	ValorFinal     float64   `json:"valor_final"`
	Diferenca      float64   `json:"diferenca"`
	ValorCreditado float64   `json:"valor_creditado,omitempty"`
	Data           time.Time `json:"data"`
}

type ClientProfileResponse struct {
	UserID                     string                    `json:"user_id"`
	SaldoCashback              float64                   `json:"saldo_cashback"`
	Premium                    bool                      `json:"premium"`
	LimiteCancelamentosMes     int                       `json:"limite_cancelamentos_mes,omitempty"`
	CancelamentosRealizadosMes int                       `json:"cancelamentos_realizados_mes"`
	MesReferenciaCancel        string                    `json:"mes_referencia_cancel,omitempty"`
	AvaliacaoMedia             float64                   `json:"avaliacao_media"`
	NumeroAvaliacoes           int                       `json:"numero_avaliacoes"`
	HistoricoValoresAMais      []ValueDeltaEventResponse `json:"historico_valores_a_mais,omitempty"`
	HistoricoValoresAMenos     []ValueDeltaEventResponse `json:"historico_valores_a_menos,omitempty"`
}

type CarrierProfileResponse struct {
	UserID                 string                    `json:"user_id"`
	SaldoDescontoPremium   float64                   `json:"saldo_desconto_premium"`
	AvaliacaoMedia         float64                   `json:"avaliacao_media"`
	NumeroAvaliacoes       int                       `json:"numero_avaliacoes"`
	HistoricoValoresAMais  []ValueDeltaEventResponse `json:"historico_valores_a_mais,omitempty"`
	HistoricoValoresAMenos []ValueDeltaEventResponse `json:"historico_valores_a_menos,omitempty"`
}

func FromClientProfile(p entities.ClientProfile) ClientProfileResponse {
	return ClientProfileResponse{
		UserID:                     p.UserID,
		SaldoCashback:              p.SaldoCashback,
		Premium:                    p.Premium,
		LimiteCancelamentosMes:     p.LimiteCancelamentosMes,
		CancelamentosRealizadosMes: p.CancelamentosRealizadosMes,
		MesReferenciaCancel:        p.MesReferenciaCancel,
		AvaliacaoMedia:             p.AvaliacaoMedia,
		NumeroAvaliacoes:           p.NumeroAvaliacoes,
		HistoricoValoresAMais:      fromValueDeltaEvents(p.HistoricoValoresAMais),
		HistoricoValoresAMenos:     fromValueDeltaEvents(p.HistoricoValoresAMenos),
	}
}

func FromCarrierProfile(p entities.CarrierProfile) CarrierProfileResponse {
	return CarrierProfileResponse{
		UserID:                 p.UserID,
		SaldoDescontoPremium:   p.SaldoDescontoPremium,
		AvaliacaoMedia:         p.AvaliacaoMedia,
		NumeroAvaliacoes:       p.NumeroAvaliacoes,
		HistoricoValoresAMais:  fromValueDeltaEvents(p.HistoricoValoresAMais),
		HistoricoValoresAMenos: fromValueDeltaEvents(p.HistoricoValoresAMenos),
	}
}

func fromValueDeltaEvents(events []entities.ValueDeltaEvent) []ValueDeltaEventResponse {
	if len(events) == 0 {
		return nil
	}
	out := make([]ValueDeltaEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ValueDeltaEventResponse{
			CotacaoID:      e.CotacaoID,
			ValorOriginal:  e.ValorOriginal,
			ValorFinal:     e.ValorFinal,
			Diferenca:      e.Diferenca,
			ValorCreditado: e.ValorCreditado,
			Data:           e.Data,
		})
	}
	return out
}
