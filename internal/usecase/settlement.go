package usecase

import (
	"fmt"
	"math"
)

// Platform commission and loyalty share, both 15% of the reference value.
const (
	commissionRate = 0.15
	loyaltyRate    = 0.15
)

// Settlement is the financial reconciliation computed when a delivery is
// finalized. Pure data; applying it to profiles and the monthly ledger is the
// ledger updater's job.
type Settlement struct {
	ValorFinalApurado       float64 `json:"valor_final_apurado"`
	DiferencaCliente        float64 `json:"diferenca_cliente"`
	DiferencaTransportadora float64 `json:"diferenca_transportadora"`
	ValorComissao           float64 `json:"valor_comissao"`
	CashbackCliente         float64 `json:"cashback_cliente"`
	CreditoTransportadora   float64 `json:"credito_transportadora"`
}

// ComputeSettlement reconciles the accepted bid total against the values each
// party declares at delivery. Commission is taken on the highest of the three
// candidates, which protects the platform against under-reporting by either
// side. Positive deltas are shared back at the loyalty rate; negative deltas
// are recorded for audit but never debit a balance.
//
// valorFinalCliente and valorFinalTransportadora fall back to valorOriginal
// when absent (zero).
func ComputeSettlement(valorOriginal, valorFinalCliente, valorFinalTransportadora float64) Settlement {
	apurado := math.Max(valorOriginal, math.Max(valorFinalCliente, valorFinalTransportadora))

	difCliente := valorFinalCliente - valorOriginal
	if valorFinalCliente == 0 {
		difCliente = 0
	}
	difTransportadora := valorFinalTransportadora - valorOriginal
	if valorFinalTransportadora == 0 {
		difTransportadora = 0
	}

	s := Settlement{
		ValorFinalApurado:       apurado,
		DiferencaCliente:        difCliente,
		DiferencaTransportadora: difTransportadora,
		ValorComissao:           round2(apurado * commissionRate),
	}
	if difCliente > 0 {
		s.CashbackCliente = round2(difCliente * loyaltyRate)
	}
	if difTransportadora > 0 {
		s.CreditoTransportadora = round2(difTransportadora * loyaltyRate)
	}
	return s
}

// round2 applies the two-decimal rounding used at every monetary persistence
// point.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PartialSettlementError reports that the quotation was finalized but one or
// more ledger writes failed afterwards. The quotation stays finalized; the
// settlement is expected to be re-applied manually (at-least-once).
type PartialSettlementError struct {
	CotacaoID string
	Err       error
}

func (e *PartialSettlementError) Error() string {
	return fmt.Sprintf("quotation %s finalized but settlement incomplete: %v", e.CotacaoID, e.Err)
}

func (e *PartialSettlementError) Unwrap() error {
	return e.Err
}
