package entities

import "time"

// ValueDeltaEvent is one append-only history entry recording a settlement value
// discrepancy between quoted and declared amounts.
type ValueDeltaEvent struct {
	CotacaoID      string    `json:"cotacao_id"`
	ValorOriginal  float64   `json:"valor_original"`
	ValorFinal     float64   `json:"valor_final"`
	Diferenca      float64   `json:"diferenca"`
	ValorCreditado float64   `json:"valor_creditado,omitempty"`
	Data           time.Time `json:"data"`
}

// ClientProfile holds the shipper's cumulative financial balances, premium
// entitlement and cancellation quota.
//
// Storage model (DynamoDB):
//   - PK: user_id
type ClientProfile struct {
	UserID    string `json:"user_id"`
	Nome      string `json:"nome,omitempty"`
	CpfOuCnpj string `json:"cpf_ou_cnpj,omitempty"`

	SaldoCashback float64 `json:"saldo_cashback"`

	Premium                    bool   `json:"premium"`
	LimiteCancelamentosMes     int    `json:"limite_cancelamentos_mes,omitempty"`
	CancelamentosRealizadosMes int    `json:"cancelamentos_realizados_mes"`
	MesReferenciaCancel        string `json:"mes_referencia_cancel,omitempty"`

	AvaliacaoMedia   float64 `json:"avaliacao_media"`
	NumeroAvaliacoes int     `json:"numero_avaliacoes"`

	HistoricoValoresAMais  []ValueDeltaEvent `json:"historico_valores_a_mais,omitempty"`
	HistoricoValoresAMenos []ValueDeltaEvent `json:"historico_valores_a_menos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarrierProfile holds the carrier's cumulative balances and rating aggregate.
//
// Storage model (DynamoDB):
//   - PK: user_id
type CarrierProfile struct {
	UserID      string `json:"user_id"`
	RazaoSocial string `json:"razao_social,omitempty"`

	SaldoDescontoPremium float64 `json:"saldo_desconto_premium"`

	AvaliacaoMedia   float64 `json:"avaliacao_media"`
	NumeroAvaliacoes int     `json:"numero_avaliacoes"`

	HistoricoValoresAMais  []ValueDeltaEvent `json:"historico_valores_a_mais,omitempty"`
	HistoricoValoresAMenos []ValueDeltaEvent `json:"historico_valores_a_menos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
