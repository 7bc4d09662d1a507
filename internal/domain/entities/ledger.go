package entities

import (
	"fmt"
	"time"
)

// LedgerEntry is one settled quotation inside a monthly bucket.
type LedgerEntry struct {
	CotacaoID       string    `json:"cotacao_id"`
	ValorCotacao    float64   `json:"valor_cotacao"`
	ValorComissao   float64   `json:"valor_comissao"`
	DataFinalizacao time.Time `json:"data_finalizacao"`
}

// MonthlyLedger aggregates a carrier's settled quotations for one calendar
// month. Created on the first settlement of the month and updated in place
// afterwards.
//
// Storage model (DynamoDB):
//   - PK: id = "<transportadora_id>#<YYYY-MM>"
//   - CotacaoIDs is a string set used as the idempotency guard: the upsert
//     conditions on the settled quotation not being present yet.
type MonthlyLedger struct {
	ID               string `json:"id"`
	TransportadoraID string `json:"transportadora_id"`
	MesReferencia    string `json:"mes_referencia"`

	Cotacoes   []LedgerEntry `json:"cotacoes"`
	CotacaoIDs []string      `json:"cotacao_ids,omitempty"`

	ValorTotalCotacoes float64 `json:"valor_total_cotacoes"`
	ValorTotalComissao float64 `json:"valor_total_comissao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerBucketID derives the monthly bucket key for a carrier at a given time.
func LedgerBucketID(transportadoraID string, at time.Time) string {
	return fmt.Sprintf("%s#%s", transportadoraID, at.UTC().Format("2006-01"))
}

// MonthReference formats the calendar month the way the ledger stores it.
func MonthReference(at time.Time) string {
	return at.UTC().Format("2006-01")
}
