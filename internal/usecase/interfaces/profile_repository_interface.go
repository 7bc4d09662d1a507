package interfaces

import (
	"context"

	"cotafrete/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for client and carrier
// profiles. Balance mutations are expressed as atomic update expressions so
// concurrent settlements never lose increments.
type IProfileRepository interface {
	GetClient(ctx context.Context, userID string) (entities.ClientProfile, error)
	GetCarrier(ctx context.Context, userID string) (entities.CarrierProfile, error)

	// CreditClientCashback adds event.ValorCreditado to the client's cashback
	// balance and appends the event to historico_valores_a_mais.
	CreditClientCashback(ctx context.Context, userID string, event entities.ValueDeltaEvent) error

	// AppendClientValueAMenos records a negative delta for audit only; the
	// balance is left untouched.
	AppendClientValueAMenos(ctx context.Context, userID string, event entities.ValueDeltaEvent) error

	// CreditCarrierPremium adds event.ValorCreditado to the carrier's premium
	// discount balance and appends the event to historico_valores_a_mais.
	CreditCarrierPremium(ctx context.Context, userID string, event entities.ValueDeltaEvent) error

	AppendCarrierValueAMenos(ctx context.Context, userID string, event entities.ValueDeltaEvent) error

	UpdateClientRating(ctx context.Context, userID string, media float64, total int) error
	UpdateCarrierRating(ctx context.Context, userID string, media float64, total int) error

	// UpdateClientCancelQuota stores the month reference and the number of
	// cancellations performed in it.
	UpdateClientCancelQuota(ctx context.Context, userID, mesReferencia string, realizados int) error
}
